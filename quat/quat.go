// Package quat provides the quaternion value type used to represent
// bivariate signals and their spectral densities.
//
// A quaternion w + xi + yj + zk packs two complex channels through the
// symplectic split g1 = w + ix, g2 = z + iy. The split is a fixed, invertible
// linear bijection and is used identically for time-domain signals and
// frequency-domain densities.
package quat

import "math"

// Q is a quaternion w + x*i + y*j + z*k.
type Q struct {
	W, X, Y, Z float64
}

// Unit imaginary quaternions.
var (
	I = Q{X: 1}
	J = Q{Y: 1}
	K = Q{Z: 1}
)

// New returns the quaternion w + x*i + y*j + z*k.
func New(w, x, y, z float64) Q {
	return Q{W: w, X: x, Y: y, Z: z}
}

// Add returns q + r.
func (q Q) Add(r Q) Q {
	return Q{q.W + r.W, q.X + r.X, q.Y + r.Y, q.Z + r.Z}
}

// Sub returns q - r.
func (q Q) Sub(r Q) Q {
	return Q{q.W - r.W, q.X - r.X, q.Y - r.Y, q.Z - r.Z}
}

// Mul returns the Hamilton product q*r. Quaternion multiplication is
// non-commutative; operand order matters.
func (q Q) Mul(r Q) Q {
	return Q{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Conj returns the quaternion conjugate w - xi - yj - zk.
func (q Q) Conj() Q {
	return Q{q.W, -q.X, -q.Y, -q.Z}
}

// Scale returns q scaled by the real factor s.
func (q Q) Scale(s float64) Q {
	return Q{s * q.W, s * q.X, s * q.Y, s * q.Z}
}

// SquaredNorm returns w^2 + x^2 + y^2 + z^2.
func (q Q) SquaredNorm() float64 {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Abs returns the quaternion magnitude.
func (q Q) Abs() float64 {
	return math.Sqrt(q.SquaredNorm())
}

// IsZero reports whether all four components are exactly zero.
func (q Q) IsZero() bool {
	return q.W == 0 && q.X == 0 && q.Y == 0 && q.Z == 0
}

// Split returns the symplectic components g1 = w + ix and g2 = z + iy.
//
// The component order of g2 is part of the algebraic convention shared with
// the Stokes extraction and must not be changed in isolation.
func (q Q) Split() (g1, g2 complex128) {
	return complex(q.W, q.X), complex(q.Z, q.Y)
}

// FromSplit is the exact inverse of [Q.Split].
func FromSplit(g1, g2 complex128) Q {
	return Q{
		W: real(g1),
		X: imag(g1),
		Y: imag(g2),
		Z: real(g2),
	}
}

// StokesNorm returns the cross-channel correlation term of the spectral
// density embedding. For (g1, g2) = q.Split() and
//
//	S1 = |g1|^2 - |g2|^2
//	S2 + i*S3 = 2 * g1 * conj(g2)
//
// it holds that q.SquaredNorm() + StokesNorm(q).Mul(J) has raw components
// (S0, S1, S2, S3), which is exactly the density layout decoded by the
// Stokes extraction.
func StokesNorm(q Q) Q {
	g1, g2 := q.Split()

	s1 := real(g1)*real(g1) + imag(g1)*imag(g1) - real(g2)*real(g2) - imag(g2)*imag(g2)
	cross := 2 * g1 * complex(real(g2), -imag(g2))

	return Q{
		W: real(cross),
		X: imag(cross),
		Z: -s1,
	}
}
