// Package dit implements the numeric core of the fixed-point radix-2
// decimation-in-time FFT: bit-reversal permutation, Q15 twiddle-table
// generation, and the per-stage butterfly kernels.
package dit

// Rounding selects how Q15xQ15 products are rescaled and how twiddle
// factors are quantized.
type Rounding uint8

const (
	// RoundNearest rounds products and twiddle factors to the nearest
	// Q15 value. This is the default; it keeps the accumulated bias
	// near zero.
	RoundNearest Rounding = iota

	// RoundTruncate reproduces the legacy behavior: twiddle factors
	// truncate toward zero and products use a plain arithmetic right
	// shift. Useful for bit-exact comparison against older outputs.
	RoundTruncate
)

// Overflow selects what happens when a butterfly output exceeds the
// 16-bit range.
type Overflow uint8

const (
	// OverflowSaturate clamps out-of-range outputs to the int16
	// boundaries. This is the default.
	OverflowSaturate Overflow = iota

	// OverflowTrap aborts the stage with ErrOverflow at the first
	// out-of-range output.
	OverflowTrap
)

// Scaling selects the per-stage gain policy.
type Scaling uint8

const (
	// ScaleNone applies no per-stage scaling; the overall transform
	// gain is N. Large-amplitude inputs will saturate.
	ScaleNone Scaling = iota

	// ScaleHalfEveryStage halves both butterfly outputs each stage,
	// giving unity overall gain at the cost of one bit of precision
	// per stage.
	ScaleHalfEveryStage
)

// Config carries the numeric policy for a transform session. The zero
// value is the default policy: round to nearest, saturate, no scaling.
type Config struct {
	Rounding Rounding
	Overflow Overflow
	Scaling  Scaling
}
