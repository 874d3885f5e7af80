// Package qft implements the quaternion Fourier transform for bivariate
// signals.
//
// The transform decomposes a quaternion sequence into its two symplectic
// planes, applies an ordinary complex DFT to each plane independently, and
// recombines the results. Treating the planes as coupled complex signals is
// what preserves the cross-channel (polarization) information; a naive
// per-component real transform would not.
package qft

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-bispec/quat"
)

// ErrEmptyInput reports a zero-length transform input.
var ErrEmptyInput = errors.New("qft: input must not be empty")

// Forward computes the quaternion Fourier transform of x.
//
// The forward transform is unitary-unnormalized: a pure tone of amplitude 1
// in one symplectic plane produces a bin of magnitude len(x).
func Forward(x []quat.Q) ([]quat.Q, error) {
	return transform(x, false)
}

// Inverse computes the inverse quaternion Fourier transform of X.
//
// The 1/N normalization lives here, so Inverse(Forward(x)) recovers x to
// numerical precision.
func Inverse(X []quat.Q) ([]quat.Q, error) {
	return transform(X, true)
}

func transform(x []quat.Q, inverse bool) ([]quat.Q, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	plan, err := algofft.NewPlan64(len(x))
	if err != nil {
		return nil, fmt.Errorf("qft: create fft plan: %w", err)
	}

	g1, g2 := quat.Split(x)

	G1 := make([]complex128, len(x))
	G2 := make([]complex128, len(x))

	if inverse {
		err = plan.Inverse(G1, g1)
	} else {
		err = plan.Forward(G1, g1)
	}

	if err != nil {
		return nil, fmt.Errorf("qft: transform first symplectic plane: %w", err)
	}

	if inverse {
		err = plan.Inverse(G2, g2)
	} else {
		err = plan.Forward(G2, g2)
	}

	if err != nil {
		return nil, fmt.Errorf("qft: transform second symplectic plane: %w", err)
	}

	return quat.Synth(G1, G2)
}
