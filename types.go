package fixfft

import (
	"github.com/cwbudde/fixfft/internal/dit"
	"github.com/cwbudde/fixfft/internal/fix"
)

// Sample is one complex value with Q15 real and imaginary parts.
// The canonical definition is in internal/fix.
type Sample = fix.Sample

// Rounding selects how Q15 products and twiddle factors are rounded.
// The canonical definition is in internal/dit.
type Rounding = dit.Rounding

// Overflow selects what happens when a butterfly output exceeds the
// 16-bit range. The canonical definition is in internal/dit.
type Overflow = dit.Overflow

// Scaling selects the per-stage gain policy.
// The canonical definition is in internal/dit.
type Scaling = dit.Scaling

const (
	// RoundNearest rounds products and twiddle factors to nearest.
	// This is the default.
	RoundNearest = dit.RoundNearest
	// RoundTruncate reproduces the legacy truncating behavior for
	// bit-exact comparison against older outputs.
	RoundTruncate = dit.RoundTruncate

	// OverflowSaturate clamps out-of-range butterfly outputs to the
	// int16 boundaries. This is the default.
	OverflowSaturate = dit.OverflowSaturate
	// OverflowTrap aborts the session with ErrArithmeticOverflow at
	// the first out-of-range butterfly output.
	OverflowTrap = dit.OverflowTrap

	// ScaleNone applies no per-stage scaling; overall gain is N.
	// This is the default.
	ScaleNone = dit.ScaleNone
	// ScaleHalfEveryStage halves both butterfly outputs every stage,
	// giving unity overall gain.
	ScaleHalfEveryStage = dit.ScaleHalfEveryStage
)

// State enumerates the engine's control states.
type State uint8

const (
	// StateIdle is the resting state; a new session may start.
	StateIdle State = iota
	// StateLoading accepts sample writes until all N addresses have
	// been written.
	StateLoading
	// StatePermuting applies the bit-reversal permutation. Transient;
	// completes inside the write that finishes ingestion.
	StatePermuting
	// StateComputing runs the butterfly stages. Transient; completes
	// inside the write that finishes ingestion.
	StateComputing
	// StateDraining serves results in natural address order until all
	// N have been read.
	StateDraining
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoading:
		return "Loading"
	case StatePermuting:
		return "Permuting"
	case StateComputing:
		return "Computing"
	case StateDraining:
		return "Draining"
	default:
		return "Unknown"
	}
}

// Status is a read-only snapshot of engine progress.
type Status struct {
	// State is the engine's current control state.
	State State
	// Busy reports whether a session is in flight.
	Busy bool
	// Done reports whether results are ready to drain.
	Done bool
}
