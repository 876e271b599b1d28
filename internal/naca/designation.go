package naca

import (
	"fmt"

	"airfoilgen/internal/domain"
)

// Parse decodes a NACA 4-digit designation into shape parameters.
//
// The first digit is the maximum camber in percent of chord, the second is
// the position of maximum camber in tenths of chord, and the last two form
// the maximum thickness in percent of chord. Anything other than exactly
// 4 ASCII digits fails with ErrInvalidDesignation. A zero camber position
// with nonzero camber is structurally valid here; the generator treats it
// as a symmetric profile.
func Parse(designation string) (domain.ShapeParameters, error) {
	if len(designation) != 4 {
		return domain.ShapeParameters{}, fmt.Errorf("%w: got %q", ErrInvalidDesignation, designation)
	}
	for i := 0; i < len(designation); i++ {
		if designation[i] < '0' || designation[i] > '9' {
			return domain.ShapeParameters{}, fmt.Errorf("%w: got %q", ErrInvalidDesignation, designation)
		}
	}
	digit := func(i int) int { return int(designation[i] - '0') }
	return domain.ShapeParameters{
		MaxCamberPercent:     digit(0),
		CamberPositionTenths: digit(1),
		ThicknessPercent:     digit(2)*10 + digit(3),
	}, nil
}
