package quat

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// ErrLengthMismatch reports a length mismatch between paired slices.
var ErrLengthMismatch = errors.New("quat: slices must have same length")

// Split decomposes q into its two symplectic planes.
func Split(q []Q) (g1, g2 []complex128) {
	g1 = make([]complex128, len(q))
	g2 = make([]complex128, len(q))

	for i, v := range q {
		g1[i], g2[i] = v.Split()
	}

	return g1, g2
}

// Synth recombines two symplectic planes into a quaternion slice.
// It is the exact inverse of [Split].
func Synth(g1, g2 []complex128) ([]Q, error) {
	if len(g1) != len(g2) {
		return nil, ErrLengthMismatch
	}

	out := make([]Q, len(g1))
	for i := range out {
		out[i] = FromSplit(g1[i], g2[i])
	}

	return out, nil
}

// AddSlices returns the element-wise sum a + b.
func AddSlices(a, b []Q) ([]Q, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	out := make([]Q, len(a))
	for i := range out {
		out[i] = a[i].Add(b[i])
	}

	return out, nil
}

// ScaleSlice returns q scaled element-wise by the real factor s.
func ScaleSlice(q []Q, s float64) []Q {
	out := make([]Q, len(q))
	for i, v := range q {
		out[i] = v.Scale(s)
	}

	return out
}

// MulTaper returns the element-wise product of x with a real taper.
//
// The multiplication runs on the split-complex representation so the two
// channel planes go through vecmath block kernels.
func MulTaper(x []Q, w []float64) ([]Q, error) {
	if len(x) != len(w) {
		return nil, ErrLengthMismatch
	}

	re1 := make([]float64, len(x))
	im1 := make([]float64, len(x))
	re2 := make([]float64, len(x))
	im2 := make([]float64, len(x))

	for i, v := range x {
		g1, g2 := v.Split()
		re1[i] = real(g1)
		im1[i] = imag(g1)
		re2[i] = real(g2)
		im2[i] = imag(g2)
	}

	vecmath.MulBlockInPlace(re1, w)
	vecmath.MulBlockInPlace(im1, w)
	vecmath.MulBlockInPlace(re2, w)
	vecmath.MulBlockInPlace(im2, w)

	out := make([]Q, len(x))
	for i := range out {
		out[i] = FromSplit(complex(re1[i], im1[i]), complex(re2[i], im2[i]))
	}

	return out, nil
}

// Mean returns the component-wise mean across the outer index of cols.
//
// Quaternion values cannot be averaged as an opaque unit; the mean is taken
// on each of the four real fields independently and reassembled.
func Mean(cols [][]Q) []Q {
	if len(cols) == 0 {
		return nil
	}

	n := len(cols[0])
	out := make([]Q, n)

	for _, col := range cols {
		for i, v := range col {
			out[i] = out[i].Add(v)
		}
	}

	inv := 1 / float64(len(cols))
	for i := range out {
		out[i] = out[i].Scale(inv)
	}

	return out
}
