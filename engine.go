package fixfft

import (
	"errors"
	"fmt"

	"github.com/cwbudde/fixfft/internal/cpu"
	"github.com/cwbudde/fixfft/internal/dit"
	"github.com/cwbudde/fixfft/internal/fix"
)

// Engine is a fixed-point radix-2 DIT FFT transform controller. One
// session runs at a time: the caller starts a session, writes all N
// samples, and drains all N frequency bins. The bit-reversal
// permutation and the butterfly stages run synchronously inside the
// write that completes ingestion, so the caller only ever observes
// the Idle, Loading, and Draining states from outside.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	n    int
	logN int
	cfg  dit.Config

	// Immutable after construction.
	twiddle []fix.Sample
	bitrev  []int
	kernels dit.Kernels

	state   State
	buf     []fix.Sample
	scratch []fix.Sample
	written []bool
	pending int         // distinct addresses still unwritten
	cursor  *dit.Cursor // live only while Computing
	readPos int
	drained bool // last session ended by exhausting its output
}

// New constructs an engine for a fixed power-of-two transform size.
// The twiddle table is computed once here and never mutated. Returns
// ErrUnsupportedSize if n is not a power of two of at least 2.
func New(n int, opts ...Option) (*Engine, error) {
	if n < 2 || !dit.IsPowerOf2(n) {
		return nil, ErrUnsupportedSize
	}

	var cfg dit.Config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{
		n:       n,
		logN:    dit.Log2(n),
		cfg:     cfg,
		twiddle: dit.ComputeTwiddleFactors(n, cfg.Rounding),
		bitrev:  dit.ComputeBitReversalIndices(n),
		kernels: dit.SelectKernels(cpu.DetectFeatures()),
		buf:     make([]fix.Sample, n),
		scratch: make([]fix.Sample, n),
		written: make([]bool, n),
	}, nil
}

// Len returns the transform size.
func (e *Engine) Len() int {
	return e.n
}

// Start begins a new session. Returns ErrEngineBusy unless the engine
// is Idle; a previous session must be fully drained or Reset first.
func (e *Engine) Start() error {
	if e.state != StateIdle {
		return ErrEngineBusy
	}

	clear(e.written)
	e.pending = e.n
	e.readPos = 0
	e.drained = false
	e.state = StateLoading

	return nil
}

// Write stores one sample at addr. Valid only while Loading; addresses
// may arrive in any order, and a duplicate write overwrites the slot
// silently without counting again toward completion. The write that
// supplies the last unwritten address runs the permutation and all
// butterfly stages before returning, leaving the engine Draining.
//
// If overflow trapping is enabled and a butterfly output exceeds the
// 16-bit range, that final write returns ErrArithmeticOverflow and the
// session is discarded.
func (e *Engine) Write(addr int, re, im int16) error {
	if e.state != StateLoading {
		return ErrEngineBusy
	}

	if addr < 0 || addr >= e.n {
		return fmt.Errorf("%w: %d (size %d)", ErrInvalidAddress, addr, e.n)
	}

	e.buf[addr] = Sample{Re: re, Im: im}

	if !e.written[addr] {
		e.written[addr] = true
		e.pending--
	}

	if e.pending == 0 {
		return e.run()
	}

	return nil
}

// run drives the transient Permuting and Computing states to
// completion. On success the engine is left Draining; on a trapped
// overflow the session is discarded and the engine returns to Idle.
func (e *Engine) run() error {
	e.state = StatePermuting
	dit.Permute(e.scratch, e.buf, e.bitrev)
	e.buf, e.scratch = e.scratch, e.buf

	e.state = StateComputing
	cur := &dit.Cursor{}
	e.cursor = cur

	for cur.Stage = 0; cur.Stage < e.logN; cur.Stage++ {
		if err := e.kernels.Stage(e.buf, e.twiddle, cur, e.cfg); err != nil {
			stage, group, butterfly := cur.Stage, cur.Group, cur.Butterfly
			e.Reset()

			if errors.Is(err, dit.ErrOverflow) {
				return fmt.Errorf("%w: stage %d, group %d, butterfly %d",
					ErrArithmeticOverflow, stage, group, butterfly)
			}

			return err
		}
	}

	e.cursor = nil
	e.readPos = 0
	e.state = StateDraining

	return nil
}

// ReadNext returns the next frequency-domain result in natural
// ascending address order. Valid only while Draining; after the Nth
// read the engine returns to Idle. Reading past the end of a drained
// session returns ErrExhaustedOutput; reading when no session has
// produced output returns ErrNotReady.
func (e *Engine) ReadNext() (addr int, s Sample, err error) {
	if e.state != StateDraining {
		if e.drained {
			return 0, Sample{}, ErrExhaustedOutput
		}

		return 0, Sample{}, ErrNotReady
	}

	addr = e.readPos
	s = e.buf[addr]
	e.readPos++

	if e.readPos == e.n {
		e.drained = true
		e.state = StateIdle
	}

	return addr, s, nil
}

// Status reports the engine's current state. Always available.
func (e *Engine) Status() Status {
	return Status{
		State: e.state,
		Busy:  e.state != StateIdle,
		Done:  e.state == StateDraining,
	}
}

// Reset discards the session in any state: buffer contents, write
// tracking, and any in-flight cursor. The engine returns to Idle
// synchronously; there is no partial-result salvage.
func (e *Engine) Reset() {
	clear(e.buf)
	clear(e.scratch)
	clear(e.written)
	e.pending = 0
	e.cursor = nil
	e.readPos = 0
	e.drained = false
	e.state = StateIdle
}
