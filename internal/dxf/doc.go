// Package dxf persists sampled airfoil profiles as DXF drawings.
//
// The writer draws the upper and lower surfaces as two open lightweight
// polylines (the lower one reversed so the outline keeps a single winding
// direction), closes the leading and trailing edges with line segments when
// the surface endpoints do not already coincide, and stamps a stacked text
// annotation. Document construction and serialisation is handled by
// github.com/yofu/dxf.
package dxf
