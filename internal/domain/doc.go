// Package domain defines core data models and interfaces shared across the app.
// It contains plain value types (shape parameters, sampled geometry) and
// contracts (interfaces) only.
package domain
