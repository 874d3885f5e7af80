package spectral

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-bispec/quat"
)

// Estimate bundles a quaternion spectral density estimate with its time
// axis, frequency axis, and Stokes decomposition.
//
// S1n, S2n, S3n, and Phi stay zero until [Estimate.Normalize] is called.
type Estimate struct {
	T      []float64
	Signal []quat.Q

	F       []float64
	Density []quat.Q

	S0, S1, S2, S3 []float64
	S1n, S2n, S3n  []float64
	Phi            []float64
}

// Frequencies returns the n sampled frequencies for sampling step dt in
// standard DFT order: zero, ascending positive frequencies, then negative
// frequencies.
func Frequencies(n int, dt float64) []float64 {
	out := make([]float64, n)
	scale := 1 / (float64(n) * dt)

	for k := range out {
		if k < (n+1)/2 {
			out[k] = float64(k) * scale
		} else {
			out[k] = float64(k-n) * scale
		}
	}

	return out
}

// Stokes extracts the four Stokes parameter arrays from a quaternion
// spectral density.
//
// With (g1, g2) the symplectic planes of the density, S0 = Re g1,
// S1 = Im g1, S3 = Re g2, S2 = Im g2. The S2/S3 assignment relative to g2 is
// deliberate and fixed; swapping it silently breaks the physical
// interpretation of the polarization state.
func Stokes(density []quat.Q) (s0, s1, s2, s3 []float64) {
	g1, g2 := quat.Split(density)

	s0 = make([]float64, len(density))
	s1 = make([]float64, len(density))
	s2 = make([]float64, len(density))
	s3 = make([]float64, len(density))

	for i := range density {
		s0[i] = real(g1[i])
		s1[i] = imag(g1[i])
		s3[i] = real(g2[i])
		s2[i] = imag(g2[i])
	}

	return s0, s1, s2, s3
}

// Normalize fills the normalized Stokes parameters and the degree of
// polarization Phi.
//
// Each parameter is divided by S0[k] + tol*max(S0); a positive tol
// regularizes bins with near-zero total power. When the denominator is not
// positive (possible only at tol = 0 in zero-power bins) the normalized
// values are set to 0: such bins carry no polarization information and the
// zero sentinel keeps Phi finite.
func (e *Estimate) Normalize(tol float64) {
	maxS0 := 0.0
	for _, v := range e.S0 {
		if v > maxS0 {
			maxS0 = v
		}
	}

	reg := tol * maxS0

	for k := range e.S0 {
		denom := e.S0[k] + reg
		if denom > 0 {
			e.S1n[k] = e.S1[k] / denom
			e.S2n[k] = e.S2[k] / denom
			e.S3n[k] = e.S3[k] / denom
		} else {
			e.S1n[k] = 0
			e.S2n[k] = 0
			e.S3n[k] = 0
		}

		e.Phi[k] = math.Sqrt(e.S1n[k]*e.S1n[k] + e.S2n[k]*e.S2n[k] + e.S3n[k]*e.S3n[k])
	}
}

// Combine returns a new estimate whose density is the element-wise sum of
// both operands' densities, with Stokes parameters recomputed from the
// summed density. Both estimates must share an identical time axis.
//
// Summation happens in the quaternion density domain before re-extraction;
// neither operand is mutated.
func (e *Estimate) Combine(other *Estimate) (*Estimate, error) {
	if !sameAxis(e.T, other.T) {
		return nil, ErrMismatchedAxis
	}

	sum, err := quat.AddSlices(e.Density, other.Density)
	if err != nil {
		return nil, err
	}

	out := e.shell()
	out.Density = sum
	out.extractStokes()

	return out, nil
}

// Scale returns a new estimate with the density scaled by the real factor s
// and Stokes parameters recomputed from the scaled density.
func (e *Estimate) Scale(s float64) *Estimate {
	out := e.shell()
	out.Density = quat.ScaleSlice(e.Density, s)
	out.extractStokes()

	return out
}

// shell clones the captured inputs and axis metadata without any density
// data, so derived estimates skip recomputing the transform.
func (e *Estimate) shell() *Estimate {
	return &Estimate{
		T:      e.T,
		Signal: e.Signal,
		F:      e.F,
	}
}

func (e *Estimate) extractStokes() {
	e.S0, e.S1, e.S2, e.S3 = Stokes(e.Density)

	n := len(e.S0)
	e.S1n = make([]float64, n)
	e.S2n = make([]float64, n)
	e.S3n = make([]float64, n)
	e.Phi = make([]float64, n)
}

func (e *Estimate) dt() float64 {
	return e.T[1] - e.T[0]
}

func newEstimate(t []float64, x []quat.Q) (*Estimate, error) {
	if len(x) == 0 {
		return nil, ErrEmptySignal
	}

	if len(t) != len(x) || len(t) < 2 {
		return nil, ErrAxisLength
	}

	dt := t[1] - t[0]
	if dt <= 0 {
		return nil, ErrAxisSpacing
	}

	for i := 2; i < len(t); i++ {
		step := t[i] - t[i-1]
		if step <= 0 || math.Abs(step-dt) > 1e-9*math.Max(1, math.Abs(dt)) {
			return nil, ErrAxisSpacing
		}
	}

	e := &Estimate{
		T:      t,
		Signal: x,
		F:      Frequencies(len(x), dt),
	}

	e.Density = make([]quat.Q, len(x))
	e.extractStokes()

	return e, nil
}

func sameAxis(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// densityFrom maps a quaternion spectrum to the scaled spectral density.
// Per bin the result equals scale*(norm(Q) + StokesNorm(Q)*j), evaluated on
// the symplectic planes so the power terms run through vecmath.
func densityFrom(spec []quat.Q, scale float64) []quat.Q {
	n := len(spec)
	g1, g2 := quat.Split(spec)

	re1 := make([]float64, n)
	im1 := make([]float64, n)
	re2 := make([]float64, n)
	im2 := make([]float64, n)

	for i := range spec {
		re1[i] = real(g1[i])
		im1[i] = imag(g1[i])
		re2[i] = real(g2[i])
		im2[i] = imag(g2[i])
	}

	p1 := make([]float64, n)
	p2 := make([]float64, n)
	vecmath.Power(p1, re1, im1)
	vecmath.Power(p2, re2, im2)

	out := make([]quat.Q, n)

	for k := range out {
		cross := 2 * g1[k] * cmplx.Conj(g2[k])

		out[k] = quat.Q{
			W: scale * (p1[k] + p2[k]),
			X: scale * (p1[k] - p2[k]),
			Y: scale * real(cross),
			Z: scale * imag(cross),
		}
	}

	return out
}
