package geocart

import "math"

// Sphere converts coordinates against a reference sphere of fixed radius.
// The zero value has radius zero and is unusable; construct one with
// NewSphere or use Earth.
type Sphere struct {
	radius float64
}

// Earth is a reference sphere with the mean Earth radius.
var Earth = Sphere{radius: EarthRadius}

// NewSphere returns a converter for a reference sphere with the given radius
// in meters. The radius must be finite and strictly positive.
func NewSphere(radius float64) (Sphere, error) {
	if !finite(radius) || radius <= 0 {
		return Sphere{}, &ValidationError{Field: "radius", Value: radius, Reason: "must be finite and positive"}
	}
	return Sphere{radius: radius}, nil
}

// Radius returns the sphere's radius in meters.
func (s Sphere) Radius() float64 {
	return s.radius
}

// ToCartesian converts g into offsets from the sphere's center. The point's
// distance from the center is the radius plus g's altitude, so an altitude at
// or below -Radius() collapses the point onto or through the origin and will
// not survive the inverse conversion.
func (s Sphere) ToCartesian(g Geographic) Cartesian {
	sinLat, cosLat := sincosd(g.lat)
	sinLon, cosLon := sincosd(g.lon)
	r := s.radius + g.alt

	return Cartesian{
		X: r * cosLat * cosLon,
		Y: r * cosLat * sinLon,
		Z: r * sinLat,
	}
}

// ToGeographic converts c back into latitude, longitude and altitude.
//
// The origin is rejected with ErrDegenerateCoordinate: a point with no
// distance from the center has no defined latitude or longitude. Everywhere
// else the inverse is total on finite input; the result is built by
// NewGeographic and holds the same invariants as any constructed position,
// so non-finite components in c surface as a *ValidationError. On the polar
// axis every longitude names the same point and the reported one is 0 or 180
// depending on component signs.
func (s Sphere) ToGeographic(c Cartesian) (Geographic, error) {
	r := c.Norm()
	if r == 0 {
		return Geographic{}, ErrDegenerateCoordinate
	}

	// On the polar axis rounding can push z/r a hair outside [-1, 1], where
	// asin has no value; the true ratio there is exactly +-1.
	ratio := c.Z / r
	if ratio > 1 {
		ratio = 1
	} else if ratio < -1 {
		ratio = -1
	}

	return NewGeographic(asind(ratio), atan2d(c.Y, c.X), r-s.radius)
}

// sincosd returns the sine and cosine of an angle in degrees. Quadrant
// boundaries are looked up exactly: pushing a multiple of 90 degrees through
// radians drifts by an ulp, which is enough to move a pole or the
// antimeridian to the wrong side of its axis.
func sincosd(deg float64) (sin, cos float64) {
	switch math.Mod(deg, 360) {
	case 0:
		return 0, 1
	case 90, -270:
		return 1, 0
	case 180, -180:
		return 0, -1
	case 270, -90:
		return -1, 0
	}
	return math.Sincos(deg * deg2rad)
}

// asind is the inverse sine in degrees, exact at the poles and the equator.
func asind(x float64) float64 {
	switch x {
	case -1:
		return -90
	case 0:
		return 0
	case 1:
		return 90
	}
	return math.Asin(x) * rad2deg
}

// atan2d is the two-argument inverse tangent in degrees, exact on the
// meridian plane where atan2 pins the result to 0 or pi.
func atan2d(y, x float64) float64 {
	if y == 0 && x != 0 {
		if x > 0 {
			return 0
		}
		return 180
	}
	return math.Atan2(y, x) * rad2deg
}
