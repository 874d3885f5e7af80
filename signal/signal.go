// Package signal synthesizes bivariate test signals in their quaternion
// embedding, for use by examples, tests, and the bispec command.
package signal

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-bispec/quat"
)

// Tone returns an elliptically polarized monochromatic tone of n samples at
// sampling step dt.
//
// The polarization state is set by the orientation theta and the ellipticity
// chi: chi = 0 is linear polarization along theta, chi = +/- pi/4 is
// circular. The two complex channels follow the Jones-vector form
//
//	g1(t) = amp * (cos(theta)cos(chi) - i*sin(theta)sin(chi)) * e^{i*2*pi*freq*t}
//	g2(t) = amp * (sin(theta)cos(chi) + i*cos(theta)sin(chi)) * e^{i*2*pi*freq*t}
//
// which is fully polarized: after estimation and normalization, Phi is 1 at
// the tone frequency.
func Tone(n int, dt, freq, amp, chi, theta float64) []quat.Q {
	env := make([]float64, n)
	phase := make([]float64, n)

	for i := range env {
		env[i] = amp
		phase[i] = 2 * math.Pi * freq * float64(i) * dt
	}

	x, _ := AMFM(env, phase, chi, theta)

	return x
}

// AMFM returns a bivariate AM-FM signal with instantaneous envelope env and
// instantaneous phase (in radians), polarized with ellipticity chi and
// orientation theta. env and phase must have the same length.
func AMFM(env, phase []float64, chi, theta float64) ([]quat.Q, error) {
	if len(env) != len(phase) {
		return nil, quat.ErrLengthMismatch
	}

	j1 := complex(math.Cos(theta)*math.Cos(chi), -math.Sin(theta)*math.Sin(chi))
	j2 := complex(math.Sin(theta)*math.Cos(chi), math.Cos(theta)*math.Sin(chi))

	g1 := make([]complex128, len(env))
	g2 := make([]complex128, len(env))

	for i := range env {
		carrier := complex(env[i]*math.Cos(phase[i]), env[i]*math.Sin(phase[i]))
		g1[i] = j1 * carrier
		g2[i] = j2 * carrier
	}

	return quat.Synth(g1, g2)
}

// UnpolarizedNoise returns n samples of isotropic bivariate white noise:
// four independent Gaussian components of equal variance, so the expected
// S1, S2, S3 vanish at every frequency. Deterministic per seed.
func UnpolarizedNoise(n int, seed int64, amp float64) []quat.Q {
	rng := rand.New(rand.NewSource(seed))

	out := make([]quat.Q, n)
	for i := range out {
		out[i] = quat.Q{
			W: amp * rng.NormFloat64(),
			X: amp * rng.NormFloat64(),
			Y: amp * rng.NormFloat64(),
			Z: amp * rng.NormFloat64(),
		}
	}

	return out
}

// Embed packs two complex channels into their quaternion representation.
func Embed(g1, g2 []complex128) ([]quat.Q, error) {
	return quat.Synth(g1, g2)
}

// TimeAxis returns n uniformly spaced timestamps starting at 0.
func TimeAxis(n int, dt float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * dt
	}

	return out
}
