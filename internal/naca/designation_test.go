package naca_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airfoilgen/internal/domain"
	"airfoilgen/internal/naca"
)

func TestParseDecodesDigits(t *testing.T) {
	p, err := naca.Parse("2412")
	require.NoError(t, err)
	assert.Equal(t, domain.ShapeParameters{
		MaxCamberPercent:     2,
		CamberPositionTenths: 4,
		ThicknessPercent:     12,
	}, p)

	p, err = naca.Parse("0009")
	require.NoError(t, err)
	assert.Equal(t, domain.ShapeParameters{ThicknessPercent: 9}, p)
}

func TestParseRejectsMalformedDesignations(t *testing.T) {
	for _, bad := range []string{"", "241", "24123", "24a2", "2 12", "-412", "24.2"} {
		_, err := naca.Parse(bad)
		assert.ErrorIs(t, err, naca.ErrInvalidDesignation, "designation %q", bad)
	}
}

// Every valid designation must survive a parse / re-encode round trip.
func TestParseRoundTrip(t *testing.T) {
	for camber := 0; camber <= 9; camber++ {
		for pos := 0; pos <= 9; pos++ {
			for thick := 0; thick <= 99; thick++ {
				s := fmt.Sprintf("%d%d%02d", camber, pos, thick)
				p, err := naca.Parse(s)
				require.NoError(t, err, "designation %q", s)
				require.Equal(t, s, p.Designation())
			}
		}
	}
}
