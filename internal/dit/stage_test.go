package dit

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/fixfft/internal/fix"
	"github.com/cwbudde/fixfft/internal/reference"
)

func runStages(t *testing.T, data []fix.Sample, cfg Config) error {
	t.Helper()

	logN := Log2(len(data))
	tw := ComputeTwiddleFactors(len(data), cfg.Rounding)
	cur := &Cursor{}

	for cur.Stage = 0; cur.Stage < logN; cur.Stage++ {
		if err := stageGeneric(data, tw, cur, cfg); err != nil {
			return err
		}
	}

	return nil
}

func TestStageSize2(t *testing.T) {
	t.Parallel()

	data := []fix.Sample{{Re: 1000}, {Re: 2000}}

	if err := runStages(t, data, Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// W^0 is quantized 1.0, so the butterfly is a plain add/subtract.
	if data[0].Re != 3000 || data[1].Re != -1000 {
		t.Errorf("got (%d, %d), want (3000, -1000)", data[0].Re, data[1].Re)
	}

	if data[0].Im != 0 || data[1].Im != 0 {
		t.Errorf("imaginary parts: got (%d, %d), want (0, 0)", data[0].Im, data[1].Im)
	}
}

func TestStageHalfScaling(t *testing.T) {
	t.Parallel()

	data := []fix.Sample{{Re: 1000}, {Re: 2000}}

	cfg := Config{Scaling: ScaleHalfEveryStage}
	if err := runStages(t, data, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data[0].Re != 1500 || data[1].Re != -500 {
		t.Errorf("got (%d, %d), want (1500, -500)", data[0].Re, data[1].Re)
	}
}

func TestStageOverflowTrap(t *testing.T) {
	t.Parallel()

	data := []fix.Sample{{Re: 32767}, {Re: 32767}}
	cur := &Cursor{}
	tw := ComputeTwiddleFactors(2, RoundNearest)

	err := stageGeneric(data, tw, cur, Config{Overflow: OverflowTrap})
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}

	// The cursor parks at the failing butterfly.
	if cur.Group != 0 || cur.Butterfly != 0 {
		t.Errorf("cursor parked at (%d, %d), want (0, 0)", cur.Group, cur.Butterfly)
	}
}

func TestStageOverflowSaturates(t *testing.T) {
	t.Parallel()

	data := []fix.Sample{{Re: 32767}, {Re: 32767}}

	if err := runStages(t, data, Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data[0].Re != 32767 {
		t.Errorf("sum output = %d, want saturated 32767", data[0].Re)
	}

	// W^0 is quantized to 32767/32768, so the product of a full-scale
	// sample rescales to 32766 and the difference output keeps a
	// one-count quantization residual.
	if data[1].Re != 1 {
		t.Errorf("difference output = %d, want 1", data[1].Re)
	}
}

// TestStagesMatchReferenceDFT runs a full size-8 transform (permute
// plus three stages) and compares against the float64 reference DFT.
func TestStagesMatchReferenceDFT(t *testing.T) {
	t.Parallel()

	src := []fix.Sample{
		{Re: 1000, Im: 0},
		{Re: -500, Im: 200},
		{Re: 300, Im: -300},
		{Re: 0, Im: 0},
		{Re: -1000, Im: 123},
		{Re: 456, Im: -789},
		{Re: 250, Im: 250},
		{Re: -321, Im: 654},
	}

	want := reference.DFT(toComplex(src))

	data := make([]fix.Sample, len(src))
	Permute(data, src, ComputeBitReversalIndices(len(src)))

	if err := runStages(t, data, Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const tol = 8.0

	for k := range data {
		if d := math.Abs(float64(data[k].Re) - real(want[k])); d > tol {
			t.Errorf("bin %d real: got %d, want %.2f", k, data[k].Re, real(want[k]))
		}

		if d := math.Abs(float64(data[k].Im) - imag(want[k])); d > tol {
			t.Errorf("bin %d imag: got %d, want %.2f", k, data[k].Im, imag(want[k]))
		}
	}
}

func toComplex(s []fix.Sample) []complex128 {
	out := make([]complex128, len(s))
	for i, v := range s {
		out[i] = complex(float64(v.Re), float64(v.Im))
	}

	return out
}
