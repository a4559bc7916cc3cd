package pagination

import (
	"github.com/gridpdf/gridpdf/internal/res"
)

// Page represents a single page in the document: an ordered group of at most
// capacity images, in original sequence order.
type Page struct {
	Width   float64
	Height  float64
	Sources []res.Source
}

// Paginator breaks an ordered image sequence into fixed-capacity pages.
type Paginator struct {
	PageWidth  float64
	PageHeight float64
	Columns    int
	Rows       int
}

// NewPaginator creates a new paginator for the given page size and grid.
func NewPaginator(pageWidth, pageHeight float64, columns, rows int) *Paginator {
	return &Paginator{
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		Columns:    columns,
		Rows:       rows,
	}
}

// Capacity returns the number of grid slots per page.
func (p *Paginator) Capacity() int {
	return p.Columns * p.Rows
}

// Paginate partitions sources into contiguous, order-preserving pages of at
// most Capacity images each. An empty input yields zero pages, which is a
// valid terminal state for the document.
func (p *Paginator) Paginate(sources []res.Source) []*Page {
	capacity := p.Capacity()
	if capacity <= 0 {
		return nil
	}

	pages := make([]*Page, 0, (len(sources)+capacity-1)/capacity)
	for start := 0; start < len(sources); start += capacity {
		end := start + capacity
		if end > len(sources) {
			end = len(sources)
		}
		pages = append(pages, &Page{
			Width:   p.PageWidth,
			Height:  p.PageHeight,
			Sources: sources[start:end],
		})
	}

	return pages
}

// Position maps an image's local index within a page to its grid position.
// The grid fills row-major: (0,0), (0,1), (1,0), (1,1), (2,0), (2,1) for a
// two column grid.
func Position(i, columns int) (row, col int) {
	return i / columns, i % columns
}
