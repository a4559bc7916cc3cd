package layout

import "fmt"

// Placement is the result of fitting one image into a cell: the scaled size
// and the offset of the scaled image from the cell's top-left corner.
type Placement struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// Fit scales an image of naturalW x naturalH pixels to fit inside a cell of
// cellW x cellH points, preserving aspect ratio and centering the result on
// both axes. Small images are scaled up to fill the cell; the policy is to
// maximize use of cell space, not to cap the scale at 1.
func Fit(naturalW, naturalH, cellW, cellH float64) (Placement, error) {
	if naturalW <= 0 || naturalH <= 0 {
		return Placement{}, fmt.Errorf("%w: %.0f x %.0f", ErrInvalidImage, naturalW, naturalH)
	}

	scale := cellW / naturalW
	if s := cellH / naturalH; s < scale {
		scale = s
	}

	scaledW := naturalW * scale
	scaledH := naturalH * scale

	return Placement{
		Width:   scaledW,
		Height:  scaledH,
		OffsetX: (cellW - scaledW) / 2,
		OffsetY: (cellH - scaledH) / 2,
	}, nil
}
