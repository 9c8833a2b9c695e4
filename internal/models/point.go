package models

// Point represents a stored geographic position awaiting cartesian conversion.
type Point struct {
	ID        int      // ID is the unique identifier for the point.
	Latitude  float64  // Latitude is the geographic latitude in degrees.
	Longitude float64  // Longitude is the geographic longitude in degrees.
	Altitude  *float64 // Altitude above the surface in meters; nil until resolved.
}
