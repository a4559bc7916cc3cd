package api

import "io"

// Options represents configuration options for the contact sheet generator
type Options struct {
	// Page dimensions in points
	PageWidth  float64
	PageHeight float64

	// Page margins in points
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64

	// Grid dimensions: images per page = Columns * Rows
	Columns int
	Rows    int

	// Filename label settings
	LabelFont     string
	LabelFontSize float64
	// LabelGap is the distance from an image's bottom edge to the label baseline
	LabelGap float64

	// Accepted file extensions for directory scans, lowercase with leading dot
	Extensions []string

	// ProgressOutput is where the rendering progress bar is written.
	// Defaults to os.Stdout; set to io.Discard to disable it.
	ProgressOutput io.Writer

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		// Default to A4 paper size (595.28 x 841.89 points)
		PageWidth:  PageSizeA4Width,
		PageHeight: PageSizeA4Height,

		// Default margins
		MarginTop:    85,
		MarginRight:  85,
		MarginBottom: 85,
		MarginLeft:   85,

		// Default 2x3 grid, six images per page
		Columns: 2,
		Rows:    3,

		// Default label settings
		LabelFont:     "Helvetica",
		LabelFontSize: 8,
		LabelGap:      14,

		// Default accepted extensions (nil means the loader's default set)
		Extensions: nil,

		// Default document metadata
		Title:    "",
		Author:   "",
		Subject:  "",
		Keywords: "",
	}
}

// WithPageSize sets the page size
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithMargins sets the page margins
func WithMargins(top, right, bottom, left float64) Option {
	return func(o *Options) {
		o.MarginTop = top
		o.MarginRight = right
		o.MarginBottom = bottom
		o.MarginLeft = left
	}
}

// WithGrid sets the grid dimensions
func WithGrid(columns, rows int) Option {
	return func(o *Options) {
		o.Columns = columns
		o.Rows = rows
	}
}

// WithLabelFont sets the label font family and size
func WithLabelFont(font string, size float64) Option {
	return func(o *Options) {
		o.LabelFont = font
		o.LabelFontSize = size
	}
}

// WithLabelGap sets the distance between image bottom and label baseline
func WithLabelGap(gap float64) Option {
	return func(o *Options) {
		o.LabelGap = gap
	}
}

// WithExtensions sets the accepted file extensions for directory scans
func WithExtensions(extensions ...string) Option {
	return func(o *Options) {
		o.Extensions = extensions
	}
}

// WithProgressOutput sets the writer for the rendering progress bar
func WithProgressOutput(w io.Writer) Option {
	return func(o *Options) {
		o.ProgressOutput = w
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// Standard page sizes in points (1/72 inch)
const (
	// A series
	PageSizeA3Width  = 841.89
	PageSizeA3Height = 1190.55
	PageSizeA4Width  = 595.28
	PageSizeA4Height = 841.89
	PageSizeA5Width  = 419.53
	PageSizeA5Height = 595.28

	// US Letter and Legal
	PageSizeLetterWidth  = 612
	PageSizeLetterHeight = 792
	PageSizeLegalWidth   = 612
	PageSizeLegalHeight  = 1008
)

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight)
}
