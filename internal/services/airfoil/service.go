package airfoil

import (
	"fmt"

	"airfoilgen/internal/domain"
	"airfoilgen/internal/naca"
)

// Annotation layout relative to chord length.
const (
	textHeightFrac  = 0.05
	textInsertXFrac = 0.1
	textInsertYFrac = 0.2
)

// Service turns designations into profiles, summaries and drawings.
type Service struct {
	writer domain.ProfileWriter
}

// New returns an airfoil service writing drawings through w.
func New(w domain.ProfileWriter) *Service { return &Service{writer: w} }

// Describe parses the designation and reports its headline numbers without
// generating any geometry. A zero chord means "not specified".
func (s *Service) Describe(designation string, chordMM float64) (domain.Summary, error) {
	params, err := naca.Parse(designation)
	if err != nil {
		return domain.Summary{}, err
	}
	return summarize(params, chordMM, 0), nil
}

// Generate parses the designation and samples the surface geometry.
func (s *Service) Generate(designation string, chordMM float64, points int) (domain.Profile, error) {
	params, err := naca.Parse(designation)
	if err != nil {
		return domain.Profile{}, err
	}
	return naca.Generate(params, chordMM, points)
}

// Export generates the profile, writes it as a drawing at path and returns
// the summary for reporting.
func (s *Service) Export(designation string, chordMM float64, points int, path string) (domain.Summary, error) {
	params, err := naca.Parse(designation)
	if err != nil {
		return domain.Summary{}, err
	}
	prof, err := naca.Generate(params, chordMM, points)
	if err != nil {
		return domain.Summary{}, err
	}
	label := domain.Annotation{
		Lines: []string{
			fmt.Sprintf("NACA %s", params.Designation()),
			fmt.Sprintf("Chord: %.1fmm", chordMM),
		},
		Insert: domain.Point{X: chordMM * textInsertXFrac, Y: chordMM * textInsertYFrac},
		Height: chordMM * textHeightFrac,
	}
	if err := s.writer.WriteProfile(path, prof, label); err != nil {
		return domain.Summary{}, err
	}
	return summarize(params, chordMM, points), nil
}

func summarize(p domain.ShapeParameters, chordMM float64, points int) domain.Summary {
	return domain.Summary{
		Designation:           p.Designation(),
		CamberPercent:         p.MaxCamberPercent,
		CamberPositionPercent: p.CamberPositionTenths * 10,
		ThicknessPercent:      p.ThicknessPercent,
		ChordMM:               chordMM,
		Points:                points,
	}
}

// Compile-time assertion that Service implements domain.AirfoilService.
var _ domain.AirfoilService = (*Service)(nil)
