// Package geocart converts between geographic and cartesian coordinates.
//
// A geographic coordinate locates a point by latitude, longitude and altitude
// relative to a reference sphere; a cartesian coordinate locates the same
// point by x, y, z offsets from the sphere's center. A Sphere of configurable
// radius converts between the two representations in either direction.
//
// The reference surface is a perfect sphere, not an ellipsoid: there are no
// geodetic correction terms, so the conversion is plain spherical
// trigonometry. Angles are degrees and lengths are meters everywhere in this
// package; the transform subpackage, being raw trigonometry, works in radians.
//
// All types are immutable values and every operation is a pure function, so
// the package is safe for concurrent use without locking.
package geocart

import "math"

// EarthRadius is the mean radius of the Earth in meters, the radius behind
// the package-level Earth sphere.
const EarthRadius = 6371000.0

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// NormalizeLongitude wraps an arbitrary longitude in degrees into the
// canonical range (-180, 180]. The two boundaries name the same meridian, so
// -180 folds to +180 and every physical longitude has exactly one
// representative. Normalizing an already canonical value returns it
// unchanged; non-finite values are returned as-is (NewGeographic is the
// validation gate).
func NormalizeLongitude(lon float64) float64 {
	if !finite(lon) {
		return lon
	}
	if lon > -180 && lon <= 180 {
		return lon
	}
	m := math.Mod(lon+180, 360)
	if m < 0 {
		m += 360
	}
	lon = m - 180
	if lon == -180 {
		lon = 180
	}
	return lon
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// almostEqual compares two scalars within tol, treating tol as an absolute
// bound near zero and a relative one for large magnitudes.
func almostEqual(a, b, tol float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		scale = 1
	}
	return math.Abs(a-b) <= tol*scale
}
