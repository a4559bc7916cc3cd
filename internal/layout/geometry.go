package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout computations.
var (
	ErrNoPrintableArea = errors.New("margins and grid leave no printable area")
	ErrInvalidImage    = errors.New("image has non-positive dimensions")
)

// Margins represents page margins in points.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// PageGeometry describes the fixed page layout for a document: page size,
// margins, and the grid the images are placed on. All lengths are in points.
type PageGeometry struct {
	PageWidth  float64
	PageHeight float64
	Margins    Margins
	Columns    int
	Rows       int
}

// CellGeometry is the derived geometry of one grid cell. Cells are uniform
// across the whole document, so this is computed once per run.
type CellGeometry struct {
	CellWidth  float64
	CellHeight float64
	MarginLeft float64
	MarginTop  float64
}

// Compute derives the cell geometry from a page geometry. It fails when the
// margins consume the whole page in either axis, or when the grid is empty.
func Compute(g PageGeometry) (CellGeometry, error) {
	if g.Columns < 1 || g.Rows < 1 {
		return CellGeometry{}, fmt.Errorf("%w: grid %dx%d", ErrNoPrintableArea, g.Columns, g.Rows)
	}

	effectiveWidth := g.PageWidth - g.Margins.Left - g.Margins.Right
	effectiveHeight := g.PageHeight - g.Margins.Top - g.Margins.Bottom
	if effectiveWidth <= 0 || effectiveHeight <= 0 {
		return CellGeometry{}, fmt.Errorf("%w: effective area %.2f x %.2f",
			ErrNoPrintableArea, effectiveWidth, effectiveHeight)
	}

	return CellGeometry{
		CellWidth:  effectiveWidth / float64(g.Columns),
		CellHeight: effectiveHeight / float64(g.Rows),
		MarginLeft: g.Margins.Left,
		MarginTop:  g.Margins.Top,
	}, nil
}

// Anchor returns the top-left corner of the cell at the given grid position.
func (c CellGeometry) Anchor(row, col int) (x, y float64) {
	x = c.MarginLeft + float64(col)*c.CellWidth
	y = c.MarginTop + float64(row)*c.CellHeight
	return x, y
}
