package spectral

import "errors"

var (
	// ErrEmptySignal reports an estimator constructed from no samples.
	ErrEmptySignal = errors.New("spectral: signal must not be empty")

	// ErrAxisLength reports a time axis that does not match the signal or is
	// too short to define a sampling step.
	ErrAxisLength = errors.New("spectral: time axis must match signal length and hold at least two samples")

	// ErrAxisSpacing reports a time axis that is not strictly increasing with
	// uniform spacing.
	ErrAxisSpacing = errors.New("spectral: time axis must be strictly increasing with uniform spacing")

	// ErrMismatchedAxis reports an attempt to combine estimates computed on
	// different time axes.
	ErrMismatchedAxis = errors.New("spectral: estimates have different time axes")

	// ErrInvalidBandwidth reports a multitaper bandwidth that yields no
	// tapers.
	ErrInvalidBandwidth = errors.New("spectral: bandwidth yields no tapers")
)
