package dxf

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"airfoilgen/internal/domain"
)

// DefaultCloseTolerance is the edge gap, in output units, above which the
// writer draws closing segments between the surface endpoints.
const DefaultCloseTolerance = 0.001

// Writer writes profiles as DXF documents.
type Writer struct {
	closeTol float64
}

// NewWriter returns a writer using the given closing tolerance; a
// non-positive value selects DefaultCloseTolerance.
func NewWriter(closeTol float64) *Writer {
	if closeTol <= 0 {
		closeTol = DefaultCloseTolerance
	}
	return &Writer{closeTol: closeTol}
}

// WriteProfile draws the two surfaces as open polylines, closes the edge
// gaps where the endpoints do not already coincide, adds the label and
// saves the document at path.
func (w *Writer) WriteProfile(path string, prof domain.Profile, label domain.Annotation) error {
	if len(prof.Upper) == 0 || len(prof.Upper) != len(prof.Lower) {
		return fmt.Errorf("dxf: malformed profile: %d upper / %d lower points", len(prof.Upper), len(prof.Lower))
	}

	d := dxf.NewDrawing()

	// Upper surface, leading edge to trailing edge.
	if _, err := d.LwPolyline(false, vertices(prof.Upper, false)...); err != nil {
		return err
	}
	// Lower surface, trailing edge back to leading edge.
	if _, err := d.LwPolyline(false, vertices(prof.Lower, true)...); err != nil {
		return err
	}

	last := len(prof.Upper) - 1
	for _, edge := range [][2]domain.Point{
		{prof.Upper[0], prof.Lower[0]},       // leading edge
		{prof.Upper[last], prof.Lower[last]}, // trailing edge
	} {
		if gap(edge[0], edge[1]) <= w.closeTol {
			continue
		}
		if _, err := d.Line(edge[0].X, edge[0].Y, 0, edge[1].X, edge[1].Y, 0); err != nil {
			return err
		}
	}

	if err := annotate(d, label); err != nil {
		return err
	}
	return d.SaveAs(path)
}

// annotate stamps the label lines top-down from the insert point.
func annotate(d *drawing.Drawing, label domain.Annotation) error {
	y := label.Insert.Y
	for _, line := range label.Lines {
		if _, err := d.Text(line, label.Insert.X, y, 0, label.Height); err != nil {
			return err
		}
		y -= 1.5 * label.Height
	}
	return nil
}

// vertices flattens points to the {x, y} pairs the polyline entity takes.
func vertices(pts []domain.Point, reverse bool) [][]float64 {
	out := make([][]float64, len(pts))
	for i := range pts {
		j := i
		if reverse {
			j = len(pts) - 1 - i
		}
		out[i] = []float64{pts[j].X, pts[j].Y}
	}
	return out
}

// gap returns the per-axis maximum distance between two points, matching
// the axis-wise tolerance check applied at the edges.
func gap(a, b domain.Point) float64 {
	return math.Max(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y))
}

// Compile-time assertion that Writer implements domain.ProfileWriter.
var _ domain.ProfileWriter = (*Writer)(nil)
