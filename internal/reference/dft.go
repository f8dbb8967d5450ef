// Package reference provides a naive float64 DFT used as a test
// oracle. It is deliberately slow and direct so its correctness is
// obvious by inspection.
package reference

import (
	"math"
	"math/cmplx"
)

// DFT computes the unscaled forward discrete Fourier transform of x.
func DFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)

	for k := 0; k < n; k++ {
		var sum complex128

		for t := 0; t < n; t++ {
			angle := -2.0 * math.Pi * float64(k) * float64(t) / float64(n)
			sum += x[t] * cmplx.Exp(complex(0, angle))
		}

		out[k] = sum
	}

	return out
}
