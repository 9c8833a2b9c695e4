// Package shape builds composite geometries out of geographic coordinates.
package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/HectorMRC/geocart"
	"github.com/HectorMRC/geocart/transform"
)

// ErrDegenerateArc reports arc endpoints that do not span a unique great
// circle: positions in the same or exactly opposite direction from the
// center admit no arc, or infinitely many.
var ErrDegenerateArc = errors.New("arc endpoints are colinear with the center: no unique great circle")

// Arc is the great-circle arc between two geographic positions, sampled at a
// fixed number of segments.
type Arc struct {
	from     geocart.Geographic
	to       geocart.Geographic
	segments int
}

// NewArc builds an arc from one position to another, split into the given
// number of segments. Segments must be at least 1; sampling the arc yields
// segments+1 points.
func NewArc(from, to geocart.Geographic, segments int) (Arc, error) {
	if segments < 1 {
		return Arc{}, &geocart.ValidationError{Field: "segments", Value: float64(segments), Reason: "must be at least 1"}
	}
	return Arc{from: from, to: to, segments: segments}, nil
}

// From returns the arc's starting position.
func (a Arc) From() geocart.Geographic {
	return a.from
}

// To returns the arc's final position.
func (a Arc) To() geocart.Geographic {
	return a.to
}

// Segments returns the number of segments the arc is split into.
func (a Arc) Segments() int {
	return a.segments
}

// Points samples the arc on the given sphere. The first point is exactly the
// from position and the last is exactly the to position; the intermediate
// points are spaced at equal angles along the great circle through both
// endpoints, keeping from's radial distance. Endpoints colinear with the
// center yield ErrDegenerateArc.
func (a Arc) Points(s geocart.Sphere) ([]geocart.Geographic, error) {
	from := s.ToCartesian(a.from)
	to := s.ToCartesian(a.to)

	axis := from.Cross(to)
	if axis.Norm() == 0 {
		return nil, ErrDegenerateArc
	}

	cos := from.Dot(to) / (from.Norm() * to.Norm())
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	step := math.Acos(cos) / float64(a.segments)

	rot, err := transform.NewRotation(axis, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to build arc rotation: %w", err)
	}

	points := make([]geocart.Geographic, 0, a.segments+1)
	points = append(points, a.from)
	for k := 1; k < a.segments; k++ {
		sample, err := s.ToGeographic(rot.WithTheta(step * float64(k)).Apply(from))
		if err != nil {
			return nil, fmt.Errorf("failed to sample arc point %d: %w", k, err)
		}
		points = append(points, sample)
	}
	points = append(points, a.to)

	return points, nil
}
