// Package fix provides Q15 fixed-point scalar arithmetic for the FFT
// engine: saturation to the 16-bit range, rescaling shifts for Q15xQ15
// products, and float-to-Q15 quantization.
//
// Q15 convention: the integer value v represents the real number
// v / 32768, so the representable range is [-1, 32767/32768].
package fix

import "math"

const (
	// Shift is the number of fractional bits in Q15.
	Shift = 15

	// One is the quantization scale for unit-magnitude reals. The exact
	// value 1.0 is not representable; it quantizes to 32767.
	One = 32767

	// MaxQ15 and MinQ15 bound the representable Q15 range.
	MaxQ15 = math.MaxInt16
	MinQ15 = math.MinInt16
)

// Sample is one complex value with Q15 real and imaginary parts.
type Sample struct {
	Re int16
	Im int16
}

// Sat16 clamps a 32-bit value to the int16 range.
func Sat16(x int32) int16 {
	if x > MaxQ15 {
		return MaxQ15
	}

	if x < MinQ15 {
		return MinQ15
	}

	return int16(x)
}

// Fits16 reports whether x is representable as int16 without clamping.
func Fits16(x int32) bool {
	return x >= MinQ15 && x <= MaxQ15
}

// RShiftRound shifts x right by shift bits, rounding half away from
// zero for positive inputs (round-half-up in two's complement).
func RShiftRound(x int32, shift uint) int32 {
	return (x + (1 << (shift - 1))) >> shift
}

// RShiftTrunc shifts x right by shift bits. The shift is arithmetic,
// so negative inputs round toward negative infinity.
func RShiftTrunc(x int32, shift uint) int32 {
	return x >> shift
}

// QuantizeNearest converts a real value in [-1, 1] to Q15 with
// round-to-nearest.
func QuantizeNearest(x float64) int16 {
	return Sat16(int32(math.Round(x * One)))
}

// QuantizeTrunc converts a real value in [-1, 1] to Q15, truncating
// toward zero. This reproduces the legacy table-generation behavior
// and carries a small bias toward zero.
func QuantizeTrunc(x float64) int16 {
	return Sat16(int32(x * One))
}
