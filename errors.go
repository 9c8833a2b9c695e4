package geocart

import (
	"errors"
	"fmt"
)

// ErrDegenerateCoordinate reports a cartesian coordinate at the origin of the
// reference sphere, for which latitude and longitude are undefined. It is the
// only failure mode of Sphere.ToGeographic on finite input, and it matches
// errors.Is.
var ErrDegenerateCoordinate = errors.New("cartesian coordinate at origin: latitude and longitude are undefined")

// ValidationError reports a numeric field that violates its domain. It is
// returned by every constructor in the package, so no coordinate value can
// exist in an invalid state. It matches errors.As.
type ValidationError struct {
	Field  string  // name of the offending field, e.g. "latitude"
	Value  float64 // the rejected value
	Reason string  // the violated constraint
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}
