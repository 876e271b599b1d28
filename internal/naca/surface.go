package naca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"airfoilgen/internal/domain"
)

// MinPoints is the smallest sample count Generate accepts. CLI callers
// typically enforce a stricter floor for usable drawings.
const MinPoints = 2

// Generate samples the airfoil described by params at points cosine-spaced
// chordwise stations and returns the resulting profile in millimetres.
//
// The computation runs in normalized chord units and scales by chordMM at
// the end:
//  1. points angles uniform over [0, pi], mapped to stations via
//     x = (1 - cos(angle)) / 2, which clusters samples at the leading and
//     trailing edges where curvature is highest.
//  2. Quartic half-thickness distribution at each station.
//  3. Piecewise-quadratic camber line and slope, flat for symmetric or
//     degenerate designations.
//  4. Half-thickness applied along the local surface normal
//     (theta = atan(slope)), so thickness is preserved where the camber
//     line is steep.
//
// Identical inputs always produce identical output.
func Generate(params domain.ShapeParameters, chordMM float64, points int) (domain.Profile, error) {
	if chordMM <= 0 {
		return domain.Profile{}, fmt.Errorf("%w: got %g", ErrInvalidChordLength, chordMM)
	}
	if points < MinPoints {
		return domain.Profile{}, fmt.Errorf("%w: got %d, want >= %d", ErrInsufficientResolution, points, MinPoints)
	}

	m := float64(params.MaxCamberPercent) / 100
	p := float64(params.CamberPositionTenths) / 10
	t := float64(params.ThicknessPercent) / 100

	beta := make([]float64, points)
	floats.Span(beta, 0, math.Pi)

	prof := domain.Profile{
		Stations: make([]float64, points),
		Upper:    make([]domain.Point, points),
		Lower:    make([]domain.Point, points),
	}
	for i, b := range beta {
		x := (1 - math.Cos(b)) / 2
		prof.Stations[i] = x

		yt := halfThickness(t, x)
		yc, slope := camber(m, p, x)

		theta := math.Atan(slope)
		sin, cos := math.Sin(theta), math.Cos(theta)

		prof.Upper[i] = domain.Point{X: (x - yt*sin) * chordMM, Y: (yc + yt*cos) * chordMM}
		prof.Lower[i] = domain.Point{X: (x + yt*sin) * chordMM, Y: (yc - yt*cos) * chordMM}
	}
	return prof, nil
}

// halfThickness returns the half-thickness normal to the mean line at
// station x for maximum thickness t, both as fractions of chord.
func halfThickness(t, x float64) float64 {
	return 5 * t * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x + 0.2843*x*x*x - 0.1015*x*x*x*x)
}

// camber returns the mean-line height and slope at station x.
//
// The two quadratic branches meet continuously at x = p. A symmetric
// airfoil (m = 0) and the degenerate designation p = 0 both yield a flat
// mean line; the p = 0 guard avoids the division by zero in the forward
// branch, so a designation like "1012" produces a symmetric profile.
func camber(m, p, x float64) (yc, slope float64) {
	if m <= 0 || p <= 0 {
		return 0, 0
	}
	if x <= p {
		yc = m / (p * p) * (2*p*x - x*x)
		slope = 2 * m / (p * p) * (p - x)
		return yc, slope
	}
	q := 1 - p
	yc = m / (q * q) * ((1 - 2*p) + 2*p*x - x*x)
	slope = 2 * m / (q * q) * (p - x)
	return yc, slope
}
