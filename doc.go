// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package jagged is a factory and transformation library for jagged
// matrices: two-dimensional numeric data held as an ordered slice of
// independently owned row slices rather than one contiguous buffer.
//
// # Overview
//
// The package provides:
//   - Construction: zero/one/constant fills, identity and diagonal
//     matrices, row and column vectors, shape-matching allocation
//   - Structural encoding: one-hot and k-hot population from boolean
//     masks or index lists
//   - Shape transform: reshape between flat sequences and matrices with
//     row-major or column-major ordering, coordinate enumeration
//   - Randomized construction from an injected Generator
//   - Conversion to and from gonum dense matrices
//
// # Basic Usage
//
//	z := jagged.Zeros[float32](2, 3)            // [[0 0 0] [0 0 0]]
//	i := jagged.Identity(3)                     // 3×3 float64 identity
//	h := jagged.OneHotN[float64]([]int{0, 2}, 3) // [[1 0 0] [0 0 1]]
//	m := jagged.Reshape([]int{1, 2, 3, 4, 5, 6}, 2, 3, jagged.RowMajor)
//
// # Preconditions Over Validation
//
// The package favors hot construction paths over defensive checks.
// Operations that treat a matrix as rectangular (diagonal, reshape,
// encodings with an explicit width) require equal row lengths and do
// not verify them; index lists must stay inside the target width. A
// violation panics at the point of access. Operations documented as
// jagged-safe (ZerosLike, Indices, KHotMask) handle uneven rows
// correctly.
//
// # Result Buffers
//
// Every population operation has an Into variant that writes into a
// caller-supplied, pre-sized matrix and returns the same reference, so
// buffers can be reused across repeated encodings. Into variants never
// clear the buffer first: re-zeroing between uses is the caller's side
// of the contract.
//
// # Supported Element Types
//
// The Numeric constraint admits float32, float64, int, int32, int64 and
// uint8, plus named types with those underlying kinds. Operations that
// need a runtime "one" (Ones, the encodings) support the base types
// only and panic with ErrUnsupportedType for named types.
package jagged
