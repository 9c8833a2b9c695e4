package geocart

import "math"

// Cartesian is a point described by x, y, z offsets in meters from the
// center of the reference sphere. The x axis pierces the equator at the
// prime meridian, the y axis pierces it at 90 degrees east, and the z axis
// points at the north pole.
//
// Any finite triple is a valid coordinate and the zero value is the origin.
// The fields are exported for direct use in vector math; NewCartesian is the
// validating path for untrusted input.
type Cartesian struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// NewCartesian validates that all three offsets are finite.
func NewCartesian(x, y, z float64) (Cartesian, error) {
	switch {
	case !finite(x):
		return Cartesian{}, &ValidationError{Field: "x", Value: x, Reason: "must be finite"}
	case !finite(y):
		return Cartesian{}, &ValidationError{Field: "y", Value: y, Reason: "must be finite"}
	case !finite(z):
		return Cartesian{}, &ValidationError{Field: "z", Value: z, Reason: "must be finite"}
	}
	return Cartesian{X: x, Y: y, Z: z}, nil
}

// Add returns the component-wise sum of c and other.
func (c Cartesian) Add(other Cartesian) Cartesian {
	return Cartesian{X: c.X + other.X, Y: c.Y + other.Y, Z: c.Z + other.Z}
}

// Sub returns the component-wise difference of c and other.
func (c Cartesian) Sub(other Cartesian) Cartesian {
	return Cartesian{X: c.X - other.X, Y: c.Y - other.Y, Z: c.Z - other.Z}
}

// Scale returns c with every component multiplied by f.
func (c Cartesian) Scale(f float64) Cartesian {
	return Cartesian{X: c.X * f, Y: c.Y * f, Z: c.Z * f}
}

// Dot returns the dot product of c and other.
func (c Cartesian) Dot(other Cartesian) float64 {
	return c.X*other.X + c.Y*other.Y + c.Z*other.Z
}

// Cross returns the cross product of c and other, following the right-hand
// rule.
func (c Cartesian) Cross(other Cartesian) Cartesian {
	return Cartesian{
		X: c.Y*other.Z - c.Z*other.Y,
		Y: c.Z*other.X - c.X*other.Z,
		Z: c.X*other.Y - c.Y*other.X,
	}
}

// Norm returns the Euclidean norm of c, its distance from the origin in
// meters.
func (c Cartesian) Norm() float64 {
	return math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z)
}

// AlmostEqual reports whether c and other agree component by component
// within tol, which acts as an absolute bound for small magnitudes and a
// relative one for large.
func (c Cartesian) AlmostEqual(other Cartesian, tol float64) bool {
	return almostEqual(c.X, other.X, tol) &&
		almostEqual(c.Y, other.Y, tol) &&
		almostEqual(c.Z, other.Z, tol)
}
