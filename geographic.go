package geocart

import "encoding/json"

// Geographic is a point described by latitude, longitude and altitude
// relative to a reference sphere. Latitude and longitude are degrees,
// altitude is meters above the sphere's surface; negative altitudes lie
// below it.
//
// Values are canonical by construction: latitude always falls within
// [-90, 90] and longitude within (-180, 180]. Use NewGeographic to build
// one. The zero value is the surface point where the equator crosses the
// prime meridian.
type Geographic struct {
	lat float64
	lon float64
	alt float64
}

// NewGeographic validates and normalizes the given position.
//
// Latitude outside [-90, 90] is rejected rather than wrapped: wrapping a
// latitude past a pole would have to flip the longitude as well, and guessing
// the caller's intent there is worse than failing. Longitude is circular and
// wraps into (-180, 180]. All three fields must be finite; NaN and the
// infinities are rejected before any range check.
func NewGeographic(lat, lon, alt float64) (Geographic, error) {
	if !finite(lat) {
		return Geographic{}, &ValidationError{Field: "latitude", Value: lat, Reason: "must be finite"}
	}
	if lat < -90 || lat > 90 {
		return Geographic{}, &ValidationError{Field: "latitude", Value: lat, Reason: "must be between -90 and 90 degrees"}
	}
	if !finite(lon) {
		return Geographic{}, &ValidationError{Field: "longitude", Value: lon, Reason: "must be finite"}
	}
	if !finite(alt) {
		return Geographic{}, &ValidationError{Field: "altitude", Value: alt, Reason: "must be finite"}
	}
	return Geographic{lat: lat, lon: NormalizeLongitude(lon), alt: alt}, nil
}

// MustGeographic is like NewGeographic but panics on invalid input. It is
// intended for fixed positions in tests and package initialization.
func MustGeographic(lat, lon, alt float64) Geographic {
	g, err := NewGeographic(lat, lon, alt)
	if err != nil {
		panic(err)
	}
	return g
}

// Latitude returns the latitude in degrees, within [-90, 90].
func (g Geographic) Latitude() float64 { return g.lat }

// Longitude returns the longitude in degrees, within (-180, 180].
func (g Geographic) Longitude() float64 { return g.lon }

// Altitude returns the altitude in meters above the reference surface.
func (g Geographic) Altitude() float64 { return g.alt }

// AlmostEqual reports whether g and other agree field by field within tol,
// which acts as an absolute bound for small magnitudes and a relative one for
// large. Conversions are lossy under floating point, so round-tripped
// positions should be compared with this rather than ==. Note that the two
// canonical neighborhoods of the antimeridian (near +180 and near -180)
// compare as far apart even though they are geographically close.
func (g Geographic) AlmostEqual(other Geographic, tol float64) bool {
	return almostEqual(g.lat, other.lat, tol) &&
		almostEqual(g.lon, other.lon, tol) &&
		almostEqual(g.alt, other.alt, tol)
}

type geographicJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

// MarshalJSON encodes g as an object with latitude, longitude and altitude
// keys.
func (g Geographic) MarshalJSON() ([]byte, error) {
	return json.Marshal(geographicJSON{Latitude: g.lat, Longitude: g.lon, Altitude: g.alt})
}

// UnmarshalJSON decodes and re-validates, so a decoded position holds the
// same invariants as a constructed one.
func (g *Geographic) UnmarshalJSON(data []byte) error {
	var raw geographicJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := NewGeographic(raw.Latitude, raw.Longitude, raw.Altitude)
	if err != nil {
		return err
	}
	*g = decoded
	return nil
}
