// Package fixfft implements a fixed-point radix-2 decimation-in-time
// FFT engine operating on Q15 complex samples.
//
// The engine is a synchronous state machine with a strict session
// protocol: Start begins a session, Write ingests exactly N samples
// (N fixed at construction, power of two), and ReadNext drains the N
// frequency bins in natural order. The bit-reversal permutation and
// the log2(N) butterfly stages run in place inside the write that
// completes ingestion. All arithmetic uses 16-bit Q15 values with
// 32-bit intermediate accumulators; butterfly outputs saturate by
// default, with trapping and legacy truncating modes available via
// options.
//
// Without per-stage scaling the overall transform gain is N, so
// large-amplitude inputs saturate; enable ScaleHalfEveryStage for
// unity gain.
package fixfft
