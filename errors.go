package fixfft

import "errors"

// Sentinel errors returned by engine operations.
var (
	// ErrUnsupportedSize is returned when the transform size requested
	// at construction is not a positive power of two.
	ErrUnsupportedSize = errors.New("fixfft: size is not a power of two")

	// ErrEngineBusy is returned when an operation is invalid for the
	// engine's current state: Start while a session is in flight, or
	// Write outside the Loading state.
	ErrEngineBusy = errors.New("fixfft: engine busy")

	// ErrInvalidAddress is returned when a write targets an address
	// outside [0, N).
	ErrInvalidAddress = errors.New("fixfft: address out of range")

	// ErrNotReady is returned when ReadNext is called before any
	// results are available to drain.
	ErrNotReady = errors.New("fixfft: no output ready")

	// ErrExhaustedOutput is returned when ReadNext is called after all
	// N results of a session have been drained.
	ErrExhaustedOutput = errors.New("fixfft: output exhausted")

	// ErrArithmeticOverflow is returned when a butterfly output
	// exceeds the 16-bit range and saturation has been disabled with
	// WithOverflow(OverflowTrap). The session is discarded.
	ErrArithmeticOverflow = errors.New("fixfft: arithmetic overflow")

	// ErrNilSlice is returned when a nil slice is passed to Transform.
	ErrNilSlice = errors.New("fixfft: nil slice")

	// ErrLengthMismatch is returned when a slice passed to Transform
	// does not match the engine's transform size.
	ErrLengthMismatch = errors.New("fixfft: slice length mismatch")
)
