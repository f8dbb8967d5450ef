package dit

import (
	"github.com/cwbudde/fixfft/internal/cpu"
	"github.com/cwbudde/fixfft/internal/fix"
)

// StageFunc applies one radix-2 stage in place for the stage recorded
// in cur, advancing cur's group/butterfly fields as it goes. It
// returns ErrOverflow when the config traps on overflow.
type StageFunc func(data, twiddle []fix.Sample, cur *Cursor, cfg Config) error

// Kernels groups the stage kernels selected for the current CPU.
type Kernels struct {
	Stage StageFunc

	// Strategy names the selected kernel set, for diagnostics.
	Strategy string
}

// SelectKernels returns the best available kernels for the detected
// features. Only the portable scalar kernel exists today; the
// dispatch layer is kept so vectorized Q15 stage kernels can slot in
// per architecture without touching the engine.
func SelectKernels(features cpu.Features) Kernels {
	generic := Kernels{Stage: stageGeneric, Strategy: "generic"}

	if features.ForceGeneric {
		return generic
	}

	// Vectorized Q15 stage kernels would dispatch on HasAVX2/HasNEON
	// here once implemented.
	return generic
}
