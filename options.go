package fixfft

import "github.com/cwbudde/fixfft/internal/dit"

// Option configures an Engine at construction time.
type Option func(*dit.Config)

// WithRounding selects the rounding mode for products and twiddle
// quantization. The default is RoundNearest.
func WithRounding(mode Rounding) Option {
	return func(c *dit.Config) { c.Rounding = mode }
}

// WithOverflow selects the overflow policy for butterfly outputs.
// The default is OverflowSaturate.
func WithOverflow(mode Overflow) Option {
	return func(c *dit.Config) { c.Overflow = mode }
}

// WithScaling selects the per-stage gain policy. The default is
// ScaleNone, which leaves the overall transform gain at N; callers
// feeding large-amplitude inputs should enable ScaleHalfEveryStage to
// avoid saturation.
func WithScaling(mode Scaling) Option {
	return func(c *dit.Config) { c.Scaling = mode }
}
