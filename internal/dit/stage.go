package dit

import "github.com/cwbudde/fixfft/internal/fix"

// Cursor tracks butterfly progress through one transform. It exists
// only while a transform is computing; on a trapped overflow it is
// left parked at the failing butterfly so the caller can report it.
type Cursor struct {
	Stage     int
	Group     int
	Butterfly int
}

// stageGeneric applies one radix-2 DIT stage in place over data,
// for the stage recorded in cur. Portable scalar implementation.
//
// For stage s with distance d = 2^s and group span 2d:
//
//	addr1 = group*2d + butterfly
//	addr2 = addr1 + d
//	t     = butterfly * n/(2d)
//
// The product data[addr2] * twiddle[t] is accumulated in 32 bits and
// rescaled by 15 bits; both outputs are computed from the pre-update
// values of addr1 and addr2, then written back in place.
func stageGeneric(data, twiddle []fix.Sample, cur *Cursor, cfg Config) error {
	n := len(data)
	d := 1 << uint(cur.Stage)
	span := d << 1
	twStep := n / span // always < n, so no mod needed

	shift := fix.RShiftRound
	if cfg.Rounding == RoundTruncate {
		shift = fix.RShiftTrunc
	}

	for cur.Group = 0; cur.Group < n/span; cur.Group++ {
		base := cur.Group * span

		for cur.Butterfly = 0; cur.Butterfly < d; cur.Butterfly++ {
			a1 := base + cur.Butterfly
			a2 := a1 + d
			w := twiddle[cur.Butterfly*twStep]

			// Q15 complex multiply in a 32-bit accumulator. The
			// rescaled components can exceed the int16 range; only
			// the final outputs are clamped or trapped.
			xr, xi := int32(data[a2].Re), int32(data[a2].Im)
			wr, wi := int32(w.Re), int32(w.Im)
			pr := shift(xr*wr-xi*wi, fix.Shift)
			pi := shift(xr*wi+xi*wr, fix.Shift)

			ur, ui := int32(data[a1].Re), int32(data[a1].Im)
			sumR, sumI := ur+pr, ui+pi
			difR, difI := ur-pr, ui-pi

			if cfg.Scaling == ScaleHalfEveryStage {
				sumR, sumI = shift(sumR, 1), shift(sumI, 1)
				difR, difI = shift(difR, 1), shift(difI, 1)
			}

			if cfg.Overflow == OverflowTrap {
				if !fix.Fits16(sumR) || !fix.Fits16(sumI) ||
					!fix.Fits16(difR) || !fix.Fits16(difI) {
					return ErrOverflow
				}
			}

			data[a1] = fix.Sample{Re: fix.Sat16(sumR), Im: fix.Sat16(sumI)}
			data[a2] = fix.Sample{Re: fix.Sat16(difR), Im: fix.Sat16(difI)}
		}
	}

	return nil
}
