package dit

import "github.com/cwbudde/fixfft/internal/fix"

// ComputeBitReversalIndices returns the bit-reversal permutation
// indices for a size-n radix-2 FFT.
func ComputeBitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	bits := Log2(n)

	for i := 0; i < n; i++ {
		bitrev[i] = ReverseBits(i, bits)
	}

	return bitrev
}

// Permute copies src into dst so that dst[a] = src[bitrev[a]].
// It must write through a separate destination buffer: pairwise
// in-place swapping double-applies the reversal for paired addresses
// unless visited slots are tracked.
func Permute(dst, src []fix.Sample, bitrev []int) {
	for a, r := range bitrev {
		dst[a] = src[r]
	}
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for b := 0; b < bits; b++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}
