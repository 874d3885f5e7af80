package spectral

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-bispec/internal/testutil"
	"github.com/cwbudde/algo-bispec/quat"
)

func TestFrequenciesOrdering(t *testing.T) {
	f := Frequencies(8, 1.0)

	want := []float64{0, 0.125, 0.25, 0.375, -0.5, -0.375, -0.25, -0.125}
	testutil.RequireSliceNearlyEqual(t, f, want, 1e-15)

	f = Frequencies(5, 0.5)
	want = []float64{0, 0.4, 0.8, -0.8, -0.4}
	testutil.RequireSliceNearlyEqual(t, f, want, 1e-12)
}

func TestStokesIndexMapping(t *testing.T) {
	// Density components carry (S0, S1, S2, S3) in (w, x, y, z) order; the
	// split maps S3 to the real part of g2 and S2 to its imaginary part.
	density := []quat.Q{quat.New(10, 1, 2, 3), quat.New(20, -4, 5, -6)}

	s0, s1, s2, s3 := Stokes(density)

	testutil.RequireSliceNearlyEqual(t, s0, []float64{10, 20}, 0)
	testutil.RequireSliceNearlyEqual(t, s1, []float64{1, -4}, 0)
	testutil.RequireSliceNearlyEqual(t, s2, []float64{2, 5}, 0)
	testutil.RequireSliceNearlyEqual(t, s3, []float64{3, -6}, 0)
}

func testEstimate(t *testing.T, density []quat.Q) *Estimate {
	t.Helper()

	n := len(density)
	axis := make([]float64, n)
	for i := range axis {
		axis[i] = float64(i)
	}

	e, err := newEstimate(axis, make([]quat.Q, n))
	if err != nil {
		t.Fatalf("newEstimate error: %v", err)
	}

	e.Density = density
	e.extractStokes()

	return e
}

func TestNormalizePlain(t *testing.T) {
	e := testEstimate(t, []quat.Q{
		quat.New(2, 1, -1, 0.5),
		quat.New(4, 4, 0, 0),
	})

	e.Normalize(0)

	testutil.RequireSliceNearlyEqual(t, e.S1n, []float64{0.5, 1}, 1e-15)
	testutil.RequireSliceNearlyEqual(t, e.S2n, []float64{-0.5, 0}, 1e-15)
	testutil.RequireSliceNearlyEqual(t, e.S3n, []float64{0.25, 0}, 1e-15)

	if math.Abs(e.Phi[1]-1) > 1e-15 {
		t.Fatalf("Phi[1] = %v, want 1", e.Phi[1])
	}
}

func TestNormalizeZeroPowerSentinel(t *testing.T) {
	e := testEstimate(t, []quat.Q{
		quat.New(0, 0, 0, 0),
		quat.New(1, 1, 0, 0),
	})

	e.Normalize(0)

	if e.S1n[0] != 0 || e.S2n[0] != 0 || e.S3n[0] != 0 || e.Phi[0] != 0 {
		t.Fatalf("zero-power bin not sentineled: S1n=%v S2n=%v S3n=%v Phi=%v",
			e.S1n[0], e.S2n[0], e.S3n[0], e.Phi[0])
	}

	testutil.RequireFinite(t, e.Phi)
}

func TestNormalizeTolerance(t *testing.T) {
	e := testEstimate(t, []quat.Q{
		quat.New(1e-12, 1e-12, 0, 0),
		quat.New(1, 1, 0, 0),
	})

	e.Normalize(0.01)

	// The weak bin is regularized by tol*max(S0) and must stay far below 1.
	if e.Phi[0] > 1e-6 {
		t.Fatalf("regularized Phi[0] = %v, want ~0", e.Phi[0])
	}

	if math.Abs(e.Phi[1]-1/1.01) > 1e-12 {
		t.Fatalf("Phi[1] = %v, want %v", e.Phi[1], 1/1.01)
	}
}

func TestCombineAndScaleLinearity(t *testing.T) {
	e := testEstimate(t, []quat.Q{
		quat.New(2, 1, -1, 0.5),
		quat.New(4, 0, 2, -2),
	})

	sum, err := e.Combine(e)
	if err != nil {
		t.Fatalf("Combine error: %v", err)
	}

	doubled := e.Scale(2)

	testutil.RequireQuatSliceEqual(t, sum.Density, doubled.Density)
	testutil.RequireSliceNearlyEqual(t, sum.S0, doubled.S0, 0)

	// Stokes parameters come from the combined density, not from summing
	// the operands' Stokes arrays.
	testutil.RequireSliceNearlyEqual(t, sum.S0, []float64{4, 8}, 1e-15)

	// Operand untouched.
	if e.Density[0] != quat.New(2, 1, -1, 0.5) {
		t.Fatalf("Combine mutated operand: %+v", e.Density[0])
	}
}

func TestCombineMismatchedAxis(t *testing.T) {
	a := testEstimate(t, make([]quat.Q, 4))
	b := testEstimate(t, make([]quat.Q, 5))

	if _, err := a.Combine(b); err != ErrMismatchedAxis {
		t.Fatalf("Combine error = %v, want ErrMismatchedAxis", err)
	}

	c := testEstimate(t, make([]quat.Q, 4))
	c.T = []float64{0, 1, 2, 3.5}

	if _, err := a.Combine(c); err != ErrMismatchedAxis {
		t.Fatalf("Combine error = %v, want ErrMismatchedAxis", err)
	}
}

func TestEstimateValidation(t *testing.T) {
	x := make([]quat.Q, 4)

	if _, err := newEstimate([]float64{0, 1, 2, 3}, nil); err != ErrEmptySignal {
		t.Fatalf("empty signal error = %v", err)
	}

	if _, err := newEstimate([]float64{0, 1, 2}, x); err != ErrAxisLength {
		t.Fatalf("short axis error = %v", err)
	}

	if _, err := newEstimate([]float64{0, -1, -2, -3}, x); err != ErrAxisSpacing {
		t.Fatalf("decreasing axis error = %v", err)
	}

	if _, err := newEstimate([]float64{0, 1, 2, 4}, x); err != ErrAxisSpacing {
		t.Fatalf("non-uniform axis error = %v", err)
	}
}
