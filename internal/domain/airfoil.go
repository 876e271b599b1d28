package domain

import "fmt"

// ShapeParameters holds the three shape parameters decoded from a NACA
// 4-digit designation. Values are the raw digits; normalization to chord
// fractions happens inside the surface generator.
type ShapeParameters struct {
	MaxCamberPercent     int // first digit: maximum camber as % of chord
	CamberPositionTenths int // second digit: position of maximum camber in tenths of chord
	ThicknessPercent     int // last two digits: maximum thickness as % of chord
}

// Designation re-encodes the parameters as the 4-digit string they were
// parsed from.
func (p ShapeParameters) Designation() string {
	return fmt.Sprintf("%d%d%02d", p.MaxCamberPercent, p.CamberPositionTenths, p.ThicknessPercent)
}

// Point is a 2D coordinate in output units (millimetres).
type Point struct {
	X, Y float64
}

// Profile is a sampled airfoil surface. Stations holds chordwise fractions
// in [0,1], non-decreasing, starting at 0 and ending at 1. Upper and Lower
// are index-aligned to Stations: index i of both surfaces belongs to the
// same nominal station, though their x-coordinates may differ slightly
// because the thickness is applied along the local surface normal.
//
// A Profile is computed fresh per call and never mutated afterwards.
type Profile struct {
	Stations []float64
	Upper    []Point
	Lower    []Point
}

// Summary carries the caller-facing numbers derived from a designation,
// used for reporting only.
type Summary struct {
	Designation           string
	CamberPercent         int
	CamberPositionPercent int // CamberPositionTenths * 10
	ThicknessPercent      int
	ChordMM               float64
	Points                int
}

// Annotation is a short stacked text label placed inside a drawing.
type Annotation struct {
	Lines  []string
	Insert Point
	Height float64
}
