package fixfft

// Transform runs one complete session over src and stores the
// spectrum in dst in natural bin order. It drives the same state
// machine as the step-wise Start/Write/ReadNext API and obeys the
// same single-session rule: the engine must be Idle.
func (e *Engine) Transform(dst, src []Sample) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) != e.n || len(src) != e.n {
		return ErrLengthMismatch
	}

	if err := e.Start(); err != nil {
		return err
	}

	for addr, s := range src {
		if err := e.Write(addr, s.Re, s.Im); err != nil {
			return err
		}
	}

	for k := 0; k < e.n; k++ {
		addr, s, err := e.ReadNext()
		if err != nil {
			return err
		}

		dst[addr] = s
	}

	return nil
}
