package pagination

import (
	"github.com/gridpdf/gridpdf/internal/res"
)

// Options represents options for the pagination engine
type Options struct {
	PageWidth  float64
	PageHeight float64
	Columns    int
	Rows       int
}

// Engine handles the pagination process
type Engine struct {
	options Options
}

// NewEngine creates a new pagination engine
func NewEngine() *Engine {
	return &Engine{
		options: Options{
			PageWidth:  595.28, // Default A4 width in points
			PageHeight: 841.89, // Default A4 height in points
			Columns:    2,
			Rows:       3,
		},
	}
}

// SetOptions sets the options for the pagination engine
func (e *Engine) SetOptions(options Options) {
	e.options = options
}

// Paginate breaks the image sequence into pages
func (e *Engine) Paginate(sources []res.Source) []*Page {
	paginator := NewPaginator(
		e.options.PageWidth,
		e.options.PageHeight,
		e.options.Columns,
		e.options.Rows,
	)

	return paginator.Paginate(sources)
}
