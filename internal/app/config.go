package app

// Config holds runtime wiring options for building the app.
type Config struct {
	// CloseTolerance is the largest edge gap (output units) left undrawn
	// before the writer adds closing segments. Zero selects the writer's
	// default of 0.001.
	CloseTolerance float64
}
