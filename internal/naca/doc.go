// Package naca computes NACA 4-digit airfoil surface geometry.
//
// Parse decodes a 4-digit designation into shape parameters. Generate
// samples the camber line and thickness distribution at cosine-spaced
// chordwise stations and combines them into index-aligned upper and lower
// surface point sequences, applying the half-thickness along the local
// surface normal rather than as a vertical offset.
//
// Both functions are pure: no I/O, no shared state, safe for concurrent
// use from independent call sites.
package naca
