// Package taper generates discrete prolate spheroidal sequence (DPSS, or
// Slepian) taper banks for multitaper spectral estimation.
package taper

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Bank holds a set of orthonormal tapers and their concentration
// eigenvalues, ordered by decreasing concentration.
type Bank struct {
	Tapers      [][]float64
	Eigenvalues []float64
}

// Len returns the taper length.
func (b *Bank) Len() int {
	if len(b.Tapers) == 0 {
		return 0
	}

	return len(b.Tapers[0])
}

// Count returns the number of tapers in the bank.
func (b *Bank) Count() int {
	return len(b.Tapers)
}

// DPSS returns a bank of count Slepian tapers of length n for the given
// time-bandwidth product bw.
//
// The sequences are the dominant eigenvectors of the symmetric tridiagonal
// concentration problem, normalized to unit energy. Sign convention: tapers
// with a significant mean are flipped to positive mean, the remaining
// (odd-order) tapers to a positive leading lobe, so the bank is reproducible
// bit-for-bit.
func DPSS(n int, bw float64, count int) (*Bank, error) {
	if n < 2 {
		return nil, errInvalidLength
	}

	if count < 1 || count > n {
		return nil, errInvalidCount
	}

	if bw <= 0 || bw >= float64(n)/2 {
		return nil, errInvalidBandwidth
	}

	w := bw / float64(n)
	cos2piW := math.Cos(2 * math.Pi * w)

	// Tridiagonal operator that commutes with the concentration kernel.
	a := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		d := (float64(n-1) - 2*float64(i)) / 2
		a.SetSym(i, i, d*d*cos2piW)

		if i < n-1 {
			a.SetSym(i, i+1, float64(i+1)*float64(n-1-i)/2)
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(a, true); !ok {
		return nil, errors.New("taper: eigendecomposition failed")
	}

	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Eigenvalues come back in ascending order; the dominant tapers are the
	// trailing columns.
	bank := &Bank{
		Tapers:      make([][]float64, count),
		Eigenvalues: make([]float64, count),
	}

	for k := 0; k < count; k++ {
		col := n - 1 - k

		v := make([]float64, n)
		for i := 0; i < n; i++ {
			v[i] = vecs.At(i, col)
		}

		normalizeSign(v)
		bank.Tapers[k] = v
		bank.Eigenvalues[k] = concentration(v, w)
	}

	return bank, nil
}

// concentration evaluates the in-band energy fraction of a unit-energy taper
// through the sinc kernel quadratic form.
func concentration(v []float64, w float64) float64 {
	n := len(v)
	sum := 0.0

	for i := 0; i < n; i++ {
		sum += 2 * w * v[i] * v[i]

		for j := i + 1; j < n; j++ {
			d := float64(i - j)
			kernel := math.Sin(2*math.Pi*w*d) / (math.Pi * d)
			sum += 2 * kernel * v[i] * v[j]
		}
	}

	if sum > 1 {
		return 1
	}

	return sum
}

func normalizeSign(v []float64) {
	sum := 0.0
	for _, x := range v {
		sum += x
	}

	if math.Abs(sum) > 1e-9 {
		if sum < 0 {
			flip(v)
		}

		return
	}

	// Zero-mean (odd-order) taper: pin the leading lobe positive.
	for _, x := range v {
		if math.Abs(x) > 1e-9 {
			if x < 0 {
				flip(v)
			}

			return
		}
	}
}

func flip(v []float64) {
	for i := range v {
		v[i] = -v[i]
	}
}
