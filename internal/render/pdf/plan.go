package pdf

import (
	"github.com/gridpdf/gridpdf/internal/layout"
	"github.com/gridpdf/gridpdf/internal/pagination"
)

// ImageDraw is the instruction to blit one image at an absolute position.
type ImageDraw struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// LabelDraw is the instruction to draw a filename label. X and Y locate the
// start of the text baseline.
type LabelDraw struct {
	X    float64
	Y    float64
	Text string
}

// planCell computes the draw instructions for the image at local index i on a
// page: the image rectangle fitted and centered inside its grid cell, and the
// filename label centered under the image with its baseline labelGap points
// below the image's bottom edge. textWidth is the rendered width of the label
// text at the label font size.
func planCell(cell layout.CellGeometry, columns, i int, naturalW, naturalH float64, label string, textWidth, labelGap float64) (ImageDraw, LabelDraw, error) {
	placement, err := layout.Fit(naturalW, naturalH, cell.CellWidth, cell.CellHeight)
	if err != nil {
		return ImageDraw{}, LabelDraw{}, err
	}

	row, col := pagination.Position(i, columns)
	anchorX, anchorY := cell.Anchor(row, col)

	img := ImageDraw{
		X:      anchorX + placement.OffsetX,
		Y:      anchorY + placement.OffsetY,
		Width:  placement.Width,
		Height: placement.Height,
	}
	lbl := LabelDraw{
		X:    anchorX + (cell.CellWidth-textWidth)/2,
		Y:    img.Y + img.Height + labelGap,
		Text: label,
	}

	return img, lbl, nil
}
