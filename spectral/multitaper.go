package spectral

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bispec/qft"
	"github.com/cwbudde/algo-bispec/quat"
	"github.com/cwbudde/algo-bispec/taper"
)

// DefaultBandwidth is the default multitaper time-bandwidth product.
const DefaultBandwidth = 2.5

// Multitaper is a reduced-variance quaternion spectral density estimate
// obtained by averaging independently tapered periodograms over a Slepian
// taper bank.
type Multitaper struct {
	Estimate

	Bandwidth float64

	// Bank and Densities hold the taper bank and the per-taper densities of
	// the last Compute call. Estimates derived via Combine or Scale carry
	// neither.
	Bank      *taper.Bank
	Densities [][]quat.Q
}

// TaperCount returns the number of tapers used for a bandwidth,
// floor(2*bw) - 1.
func TaperCount(bw float64) int {
	return int(math.Floor(2*bw)) - 1
}

// NewMultitaper captures the signal, time axis, and bandwidth without
// computing the estimate. Call [Multitaper.Compute] to fill the density, or
// use [ComputeMultitaper] for the one-shot form.
func NewMultitaper(t []float64, x []quat.Q, bw float64) (*Multitaper, error) {
	if TaperCount(bw) < 1 {
		return nil, ErrInvalidBandwidth
	}

	e, err := newEstimate(t, x)
	if err != nil {
		return nil, err
	}

	return &Multitaper{Estimate: *e, Bandwidth: bw}, nil
}

// Compute fills the density and Stokes parameters by averaging
// floor(2*bw)-1 tapered periodograms component-wise.
func (m *Multitaper) Compute() error {
	count := TaperCount(m.Bandwidth)

	bank, err := taper.DPSS(len(m.Signal), m.Bandwidth, count)
	if err != nil {
		return fmt.Errorf("spectral: dpss bank: %w", err)
	}

	dt := m.dt()
	densities := make([][]quat.Q, count)

	for n, tp := range bank.Tapers {
		tapered, err := quat.MulTaper(m.Signal, tp)
		if err != nil {
			return fmt.Errorf("spectral: apply taper %d: %w", n, err)
		}

		spec, err := qft.Forward(tapered)
		if err != nil {
			return fmt.Errorf("spectral: multitaper transform %d: %w", n, err)
		}

		// Scaled by dt alone: the unit-energy taper carries the 1/N
		// weighting of the untapered periodogram path.
		densities[n] = densityFrom(spec, dt)
	}

	m.Bank = bank
	m.Densities = densities
	m.Density = quat.Mean(densities)
	m.extractStokes()

	return nil
}

// ComputeMultitaper constructs and computes a multitaper estimate.
func ComputeMultitaper(t []float64, x []quat.Q, bw float64) (*Multitaper, error) {
	m, err := NewMultitaper(t, x, bw)
	if err != nil {
		return nil, err
	}

	if err := m.Compute(); err != nil {
		return nil, err
	}

	return m, nil
}
