// Package transform provides geometric transformations over cartesian
// coordinates, chiefly rotations about an arbitrary axis through the center
// of the reference sphere.
//
// Unlike the degree-facing geocart API, this package is raw trigonometry and
// works in radians.
package transform

import (
	"math"

	"github.com/HectorMRC/geocart"
)

// Transform maps a cartesian coordinate to another cartesian coordinate.
type Transform interface {
	Apply(geocart.Cartesian) geocart.Cartesian
}

// Axis identifies one of the three coordinate axes of the cartesian space.
type Axis int

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

// Unit returns the unit vector pointing along the axis, convenient as a
// rotation axis. Values outside the three constants yield the zero vector,
// which no rotation accepts.
func (a Axis) Unit() geocart.Cartesian {
	switch a {
	case XAxis:
		return geocart.Cartesian{X: 1}
	case YAxis:
		return geocart.Cartesian{Y: 1}
	case ZAxis:
		return geocart.Cartesian{Z: 1}
	}
	return geocart.Cartesian{}
}

const tau = 2 * math.Pi

// NormalizeRadians wraps an angle into [0, 2*pi). Non-finite values are
// returned unchanged.
func NormalizeRadians(rad float64) float64 {
	if math.IsNaN(rad) || math.IsInf(rad, 0) {
		return rad
	}
	if rad >= 0 && rad < tau {
		return rad
	}
	m := math.Mod(rad, tau)
	if m < 0 {
		m += tau
		if m == tau {
			// rad was negative but smaller in magnitude than an ulp of tau
			m = 0
		}
	}
	return m
}
