package dit

import (
	"math"
	"testing"
)

func TestTwiddleKnownEntries(t *testing.T) {
	t.Parallel()

	const n = 256

	tw := ComputeTwiddleFactors(n, RoundNearest)

	tests := []struct {
		k      int
		re, im int16
	}{
		{0, 32767, 0},     // W^0 = 1
		{64, 0, -32767},   // W^(N/4) = -i
		{128, -32767, 0},  // W^(N/2) = -1
		{192, 0, 32767},   // W^(3N/4) = i
		{32, 23170, -23170}, // W^(N/8) = (1-i)/sqrt(2)
	}

	for _, tt := range tests {
		got := tw[tt.k]
		if got.Re != tt.re || got.Im != tt.im {
			t.Errorf("tw[%d] = (%d, %d), want (%d, %d)", tt.k, got.Re, got.Im, tt.re, tt.im)
		}
	}
}

// TestTwiddleConjugateSymmetry verifies tw[n-k] == conj(tw[k]) within
// one quantization step (the float angles of k and n-k are not
// bit-identical, so the quantized values may differ by one).
func TestTwiddleConjugateSymmetry(t *testing.T) {
	t.Parallel()

	const n = 256

	for _, mode := range []Rounding{RoundNearest, RoundTruncate} {
		tw := ComputeTwiddleFactors(n, mode)

		for k := 1; k < n; k++ {
			a, b := tw[k], tw[n-k]

			if dRe := int(a.Re) - int(b.Re); dRe < -1 || dRe > 1 {
				t.Fatalf("mode %d: tw[%d].Re = %d, tw[%d].Re = %d", mode, k, a.Re, n-k, b.Re)
			}

			if dIm := int(a.Im) + int(b.Im); dIm < -1 || dIm > 1 {
				t.Fatalf("mode %d: tw[%d].Im = %d, tw[%d].Im = %d", mode, k, a.Im, n-k, b.Im)
			}
		}
	}
}

// TestTwiddleMatchesFloatReference checks every entry against the
// unquantized value within one quantization step.
func TestTwiddleMatchesFloatReference(t *testing.T) {
	t.Parallel()

	const n = 256

	tw := ComputeTwiddleFactors(n, RoundNearest)

	for k := 0; k < n; k++ {
		angle := -2.0 * math.Pi * float64(k) / float64(n)
		wantRe := math.Cos(angle) * 32767
		wantIm := math.Sin(angle) * 32767

		if d := math.Abs(float64(tw[k].Re) - wantRe); d > 1 {
			t.Errorf("tw[%d].Re = %d, want %.2f", k, tw[k].Re, wantRe)
		}

		if d := math.Abs(float64(tw[k].Im) - wantIm); d > 1 {
			t.Errorf("tw[%d].Im = %d, want %.2f", k, tw[k].Im, wantIm)
		}
	}
}

// TestTwiddleTruncateBiasTowardZero verifies the legacy mode never
// exceeds the nearest-rounded magnitude.
func TestTwiddleTruncateBiasTowardZero(t *testing.T) {
	t.Parallel()

	const n = 256

	trunc := ComputeTwiddleFactors(n, RoundTruncate)

	for k := 0; k < n; k++ {
		angle := -2.0 * math.Pi * float64(k) / float64(n)

		if exact := math.Abs(math.Cos(angle)) * 32767; math.Abs(float64(trunc[k].Re)) > exact {
			t.Errorf("tw[%d].Re = %d exceeds |exact| %.2f", k, trunc[k].Re, exact)
		}

		if exact := math.Abs(math.Sin(angle)) * 32767; math.Abs(float64(trunc[k].Im)) > exact {
			t.Errorf("tw[%d].Im = %d exceeds |exact| %.2f", k, trunc[k].Im, exact)
		}
	}
}

func TestTwiddleEmpty(t *testing.T) {
	t.Parallel()

	if got := ComputeTwiddleFactors(0, RoundNearest); got != nil {
		t.Errorf("ComputeTwiddleFactors(0) = %v, want nil", got)
	}
}
