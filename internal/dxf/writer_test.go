package dxf_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airfoilgen/internal/domain"
	"airfoilgen/internal/dxf"
	"airfoilgen/internal/naca"
)

var (
	polylineRe = regexp.MustCompile(`(?m)^LWPOLYLINE\r?$`)
	lineRe     = regexp.MustCompile(`(?m)^LINE\r?$`)
	textRe     = regexp.MustCompile(`(?m)^TEXT\r?$`)
)

func generateProfile(t *testing.T, designation string, chordMM float64, points int) domain.Profile {
	t.Helper()
	params, err := naca.Parse(designation)
	require.NoError(t, err)
	prof, err := naca.Generate(params, chordMM, points)
	require.NoError(t, err)
	return prof
}

func TestWriteProfileCreatesDrawing(t *testing.T) {
	prof := generateProfile(t, "2412", 100.0, 50)
	path := filepath.Join(t.TempDir(), "naca_2412.dxf")

	w := dxf.NewWriter(0)
	err := w.WriteProfile(path, prof, domain.Annotation{
		Lines:  []string{"NACA 2412", "Chord: 100.0mm"},
		Insert: domain.Point{X: 10, Y: 20},
		Height: 5,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)

	assert.Len(t, polylineRe.FindAllString(content, -1), 2, "one open polyline per surface")
	assert.Len(t, textRe.FindAllString(content, -1), 2, "one TEXT entity per label line")
	assert.Contains(t, content, "NACA 2412")
	assert.Contains(t, content, "Chord: 100.0mm")

	// The blunt trailing edge of a cambered profile needs a closing
	// segment; the leading edge already coincides.
	assert.Len(t, lineRe.FindAllString(content, -1), 1)
}

func TestWriteProfileToleranceSuppressesClosing(t *testing.T) {
	prof := generateProfile(t, "0012", 100.0, 50)
	path := filepath.Join(t.TempDir(), "naca_0012.dxf")

	// Tolerance wider than any edge gap: no closing segments at all.
	w := dxf.NewWriter(10)
	require.NoError(t, w.WriteProfile(path, prof, domain.Annotation{
		Lines:  []string{"NACA 0012"},
		Insert: domain.Point{X: 10, Y: 20},
		Height: 5,
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, lineRe.FindAllString(string(raw), -1))
}

func TestWriteProfileRejectsMalformedProfiles(t *testing.T) {
	w := dxf.NewWriter(0)
	path := filepath.Join(t.TempDir(), "bad.dxf")

	err := w.WriteProfile(path, domain.Profile{}, domain.Annotation{})
	assert.Error(t, err)

	uneven := domain.Profile{
		Upper: []domain.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
		Lower: []domain.Point{{X: 0, Y: 0}},
	}
	err = w.WriteProfile(path, uneven, domain.Annotation{})
	assert.Error(t, err)
}
