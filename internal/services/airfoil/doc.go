// Package airfoil orchestrates the designation parser, the surface
// generator and the drawing sink.
//
// It derives the annotation and summary a drawing carries and delegates
// the geometry itself to the naca package.
package airfoil
