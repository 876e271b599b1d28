package domain

// AirfoilService turns 4-digit designations into sampled profiles,
// summaries and exported drawings.
type AirfoilService interface {
	Describe(designation string, chordMM float64) (Summary, error)
	Generate(designation string, chordMM float64, points int) (Profile, error)
	Export(designation string, chordMM float64, points int, path string) (Summary, error)
}

// ProfileWriter is the geometry sink. It consumes the ordered upper and
// lower point sequences of a profile plus a label and persists them as a
// vector drawing at path.
type ProfileWriter interface {
	WriteProfile(path string, prof Profile, label Annotation) error
}
