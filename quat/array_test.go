package quat

import (
	"errors"
	"math"
	"testing"
)

func TestSplitSynthRoundTrip(t *testing.T) {
	q := []Q{
		New(1, 2, 3, 4),
		New(-0.5, 0.25, -0.125, 8),
		New(0, 0, 0, 0),
	}

	g1, g2 := Split(q)

	back, err := Synth(g1, g2)
	if err != nil {
		t.Fatalf("Synth error: %v", err)
	}

	for i := range q {
		if back[i] != q[i] {
			t.Fatalf("index %d: round trip %+v, want %+v", i, back[i], q[i])
		}
	}
}

func TestSynthLengthMismatch(t *testing.T) {
	_, err := Synth(make([]complex128, 2), make([]complex128, 3))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Synth error = %v, want ErrLengthMismatch", err)
	}
}

func TestAddAndScaleSlices(t *testing.T) {
	a := []Q{New(1, 2, 3, 4), New(-1, 0, 1, 0)}
	b := []Q{New(0.5, 0.5, 0.5, 0.5), New(1, 1, 1, 1)}

	sum, err := AddSlices(a, b)
	if err != nil {
		t.Fatalf("AddSlices error: %v", err)
	}

	if sum[0] != New(1.5, 2.5, 3.5, 4.5) || sum[1] != New(0, 1, 2, 1) {
		t.Fatalf("unexpected sum: %+v", sum)
	}

	if _, err := AddSlices(a, b[:1]); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("AddSlices mismatch error = %v", err)
	}

	scaled := ScaleSlice(a, 2)
	if scaled[0] != New(2, 4, 6, 8) {
		t.Fatalf("unexpected scale: %+v", scaled[0])
	}

	// Operands stay untouched.
	if a[0] != New(1, 2, 3, 4) {
		t.Fatalf("ScaleSlice mutated input: %+v", a[0])
	}
}

func TestMulTaper(t *testing.T) {
	x := []Q{New(1, 2, 3, 4), New(-2, 1, 0, 0.5), New(0, 0, 1, 0)}
	w := []float64{0.5, 2, 0}

	got, err := MulTaper(x, w)
	if err != nil {
		t.Fatalf("MulTaper error: %v", err)
	}

	for i := range x {
		want := x[i].Scale(w[i])

		d := got[i].Sub(want)
		if math.Abs(d.W)+math.Abs(d.X)+math.Abs(d.Y)+math.Abs(d.Z) > 1e-12 {
			t.Fatalf("index %d: got %+v, want %+v", i, got[i], want)
		}
	}

	if _, err := MulTaper(x, w[:2]); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("MulTaper mismatch error = %v", err)
	}
}

func TestMeanComponentWise(t *testing.T) {
	cols := [][]Q{
		{New(1, 2, 3, 4), New(0, 0, 0, 0)},
		{New(3, 6, 9, 12), New(2, 4, 6, 8)},
	}

	mean := Mean(cols)
	if mean[0] != New(2, 4, 6, 8) || mean[1] != New(1, 2, 3, 4) {
		t.Fatalf("unexpected mean: %+v", mean)
	}

	if Mean(nil) != nil {
		t.Fatal("Mean(nil) should be nil")
	}
}
