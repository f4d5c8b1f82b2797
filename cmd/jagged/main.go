// Package main provides the Jagged library CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/jagged"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Jagged %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("Jagged - Jagged-Matrix Factory Library for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Print a few constructed matrices")
}

func demo() {
	fmt.Println("Identity(3):")
	printMatrix(jagged.Identity(3))

	fmt.Println("\nOneHotN([0 2 1], 3):")
	printMatrix(jagged.OneHotN[float64]([]int{0, 2, 1}, 3))

	fmt.Println("\nDiagonalRectVec(3, 5, [7 8 9]):")
	printMatrix(jagged.DiagonalRectVec(3, 5, []float64{7, 8, 9}))
}

func printMatrix(m jagged.Matrix[float64]) {
	for _, row := range m {
		fmt.Println(" ", row)
	}
}
