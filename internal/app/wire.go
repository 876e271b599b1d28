package app

import (
	"airfoilgen/internal/domain"
	"airfoilgen/internal/dxf"
	airfoilsvc "airfoilgen/internal/services/airfoil"
)

// Wire bundles the writer and services for the CLI.
type Wire struct {
	Airfoils domain.AirfoilService
	Writer   domain.ProfileWriter
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	w := dxf.NewWriter(cfg.CloseTolerance)
	return &Wire{
		Airfoils: airfoilsvc.New(w),
		Writer:   w,
	}
}
