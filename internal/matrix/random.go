package matrix

import "math/rand"

// Generator produces element values for randomized construction. It is
// injected by the caller; the package never seeds, caches, or shares
// one across calls.
type Generator[T Numeric] interface {
	// Generate returns n freshly generated values.
	Generate(n int) []T

	// GenerateInto fills dst completely with fresh values.
	GenerateInto(dst []T)
}

// Uniform is a Generator drawing values uniformly from [min, max).
type Uniform[T Float] struct {
	min, max T
	rng      *rand.Rand
}

// NewUniform returns a Uniform generator over [min, max) with a
// non-deterministic seed.
func NewUniform[T Float](minVal, maxVal T) *Uniform[T] {
	return NewUniformSeeded(minVal, maxVal, rand.Int63()) //nolint:gosec // statistical fills, not crypto
}

// NewUniformSeeded returns a Uniform generator with a fixed seed for
// reproducible fills.
func NewUniformSeeded[T Float](minVal, maxVal T, seed int64) *Uniform[T] {
	return &Uniform[T]{
		min: minVal,
		max: maxVal,
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // intentional deterministic seed for reproducibility
	}
}

// Generate returns n fresh values.
func (u *Uniform[T]) Generate(n int) []T {
	out := make([]T, n)
	u.GenerateInto(out)
	return out
}

// GenerateInto fills dst with values from [min, max).
func (u *Uniform[T]) GenerateInto(dst []T) {
	span := float64(u.max - u.min)
	for i := range dst {
		dst[i] = u.min + T(u.rng.Float64()*span)
	}
}

// Random creates a size×size matrix filled row by row from gen.
//
// With symmetric set, only the first size/2 cells of each row are
// generated; the rest mirror them end to start (row[size-1-i] =
// row[i]), and for odd sizes the center cell of each row stays at
// zero. The mirror is within each row only: the result is symmetric
// under transpose only if gen produces matching values for mirrored
// rows, which Random does not enforce.
func Random[T Numeric](size int, gen Generator[T], symmetric bool) Matrix[T] {
	return RandomInto(Zeros[T](size, size), gen, symmetric)
}

// RandomInto fills a caller-supplied square buffer the way Random does.
// The buffer is not cleared first.
func RandomInto[T Numeric](result Matrix[T], gen Generator[T], symmetric bool) Matrix[T] {
	if !symmetric {
		return RandomRectInto(result, gen)
	}
	size := result.Rows()
	half := size / 2
	for i := 0; i < size; i++ {
		gen.GenerateInto(result[i][:half])
		for j := 0; j < half; j++ {
			result[i][size-1-j] = result[i][j]
		}
	}
	return result
}

// RandomRect creates a rows×cols matrix with each row independently
// generated at full width.
func RandomRect[T Numeric](rows, cols int, gen Generator[T]) Matrix[T] {
	return RandomRectInto(Zeros[T](rows, cols), gen)
}

// RandomRectInto fills every row of a caller-supplied buffer from gen,
// each row at its own length.
func RandomRectInto[T Numeric](result Matrix[T], gen Generator[T]) Matrix[T] {
	for i := range result {
		gen.GenerateInto(result[i])
	}
	return result
}

// RandomUniform creates a rows×cols matrix with values drawn uniformly
// from [min, max).
func RandomUniform[T Float](rows, cols int, minVal, maxVal T) Matrix[T] {
	return RandomRect(rows, cols, NewUniform(minVal, maxVal))
}
