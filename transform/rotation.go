package transform

import (
	"errors"
	"math"

	"github.com/HectorMRC/geocart"
)

// ErrZeroAxis reports a rotation axis with no direction.
var ErrZeroAxis = errors.New("rotation axis cannot be the zero vector")

// Rotation rotates coordinates about an axis through the origin by a fixed
// angle, following the right-hand rule. It implements Transform.
type Rotation struct {
	axis  geocart.Cartesian // unit length
	theta float64           // radians, within [0, 2*pi)
}

// NewRotation builds a rotation of theta radians about the given axis. The
// axis does not have to be unit length, but it cannot be the zero vector:
// rotating about nothing is undefined. Theta is normalized into [0, 2*pi).
func NewRotation(axis geocart.Cartesian, theta float64) (Rotation, error) {
	if _, err := geocart.NewCartesian(axis.X, axis.Y, axis.Z); err != nil {
		return Rotation{}, err
	}

	norm := axis.Norm()
	if norm == 0 {
		return Rotation{}, ErrZeroAxis
	}

	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return Rotation{}, &geocart.ValidationError{Field: "theta", Value: theta, Reason: "must be finite"}
	}

	return Rotation{axis: axis.Scale(1 / norm), theta: NormalizeRadians(theta)}, nil
}

// About builds a rotation of theta radians about one of the coordinate axes.
func About(axis Axis, theta float64) (Rotation, error) {
	return NewRotation(axis.Unit(), theta)
}

// Axis returns the rotation axis as a unit vector.
func (r Rotation) Axis() geocart.Cartesian {
	return r.axis
}

// Theta returns the rotation angle in radians, within [0, 2*pi).
func (r Rotation) Theta() float64 {
	return r.theta
}

// WithTheta returns a copy of r rotating by the given finite angle instead,
// normalized the same way as NewRotation.
func (r Rotation) WithTheta(theta float64) Rotation {
	r.theta = NormalizeRadians(theta)
	return r
}

// Apply rotates c about the rotation's axis by its angle, using the
// Rodrigues rotation matrix.
func (r Rotation) Apply(c geocart.Cartesian) geocart.Cartesian {
	sin, cos := math.Sincos(r.theta)
	k := 1 - cos
	ax, ay, az := r.axis.X, r.axis.Y, r.axis.Z

	return geocart.Cartesian{
		X: c.X*(cos+ax*ax*k) + c.Y*(ax*ay*k-az*sin) + c.Z*(ax*az*k+ay*sin),
		Y: c.X*(ay*ax*k+az*sin) + c.Y*(cos+ay*ay*k) + c.Z*(ay*az*k-ax*sin),
		Z: c.X*(az*ax*k-ay*sin) + c.Y*(az*ay*k+ax*sin) + c.Z*(cos+az*az*k),
	}
}
