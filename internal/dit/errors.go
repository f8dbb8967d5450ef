package dit

import "errors"

// ErrOverflow is returned by stage kernels when a butterfly output
// exceeds the 16-bit range and the config traps instead of saturating.
// The cursor is left parked at the failing butterfly.
var ErrOverflow = errors.New("dit: butterfly output overflow")
