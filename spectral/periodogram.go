package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-bispec/qft"
	"github.com/cwbudde/algo-bispec/quat"
)

// Periodogram is a single-realization quaternion spectral density estimate.
type Periodogram struct {
	Estimate
}

// NewPeriodogram captures the signal and time axis and prepares the
// frequency axis without computing the estimate. Call [Periodogram.Compute]
// to fill the density, or use [ComputePeriodogram] for the one-shot form.
func NewPeriodogram(t []float64, x []quat.Q) (*Periodogram, error) {
	e, err := newEstimate(t, x)
	if err != nil {
		return nil, err
	}

	return &Periodogram{Estimate: *e}, nil
}

// Compute fills the density and Stokes parameters.
//
// The density is (dt/N)*(norm(Q[k]) + StokesNorm(Q[k])*j) with Q the
// quaternion Fourier transform of the signal; dt/N converts the raw
// transform magnitude into a power spectral density. The computation is a
// pure function of the captured inputs: identical inputs produce
// bit-identical output.
func (p *Periodogram) Compute() error {
	spec, err := qft.Forward(p.Signal)
	if err != nil {
		return fmt.Errorf("spectral: periodogram transform: %w", err)
	}

	p.Density = densityFrom(spec, p.dt()/float64(len(p.Signal)))
	p.extractStokes()

	return nil
}

// ComputePeriodogram constructs and computes a periodogram estimate.
func ComputePeriodogram(t []float64, x []quat.Q) (*Periodogram, error) {
	p, err := NewPeriodogram(t, x)
	if err != nil {
		return nil, err
	}

	if err := p.Compute(); err != nil {
		return nil, err
	}

	return p, nil
}
