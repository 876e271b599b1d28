// Package commands defines the airfoilgen CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - generate   Sample a NACA 4-digit airfoil and export it as a DXF drawing
//   - info       Print the specifications encoded by a designation
//
// # Implementation
//
// The root command builds the DXF writer and the airfoil service before any
// subcommand runs, so handlers share one wired app context.
package commands
