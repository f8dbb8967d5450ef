package dit

import (
	"math"

	"github.com/cwbudde/fixfft/internal/fix"
)

// ComputeTwiddleFactors returns the Q15 twiddle table for a size-n
// FFT: entry k encodes W_n^k = exp(-2πik/n), quantized according to
// mode. The table is computed once at engine construction and never
// mutated afterwards.
func ComputeTwiddleFactors(n int, mode Rounding) []fix.Sample {
	if n <= 0 {
		return nil
	}

	quantize := fix.QuantizeNearest
	if mode == RoundTruncate {
		quantize = fix.QuantizeTrunc
	}

	twiddle := make([]fix.Sample, n)
	for k := 0; k < n; k++ {
		angle := -2.0 * math.Pi * float64(k) / float64(n)
		twiddle[k] = fix.Sample{
			Re: quantize(math.Cos(angle)),
			Im: quantize(math.Sin(angle)),
		}
	}

	return twiddle
}
