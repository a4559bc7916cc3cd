package gridpdf

import (
	"github.com/gridpdf/gridpdf/pkg/api"
)

type Generator = api.Generator
type Options = api.Options
type Option = api.Option
type Source = api.Source

func New() *Generator                           { return api.New() }
func NewWithOptions(options Options) *Generator { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	ErrNoImages = api.ErrNoImages

	WithPageSize       = api.WithPageSize
	WithMargins        = api.WithMargins
	WithGrid           = api.WithGrid
	WithLabelFont      = api.WithLabelFont
	WithLabelGap       = api.WithLabelGap
	WithExtensions     = api.WithExtensions
	WithProgressOutput = api.WithProgressOutput
	WithTitle          = api.WithTitle
	WithAuthor         = api.WithAuthor
	WithSubject        = api.WithSubject
	WithKeywords       = api.WithKeywords
	WithPageSizeA4     = api.WithPageSizeA4
	WithPageSizeLetter = api.WithPageSizeLetter
	WithPageSizeLegal  = api.WithPageSizeLegal
)

const (
	PageSizeA3Width  = api.PageSizeA3Width
	PageSizeA3Height = api.PageSizeA3Height
	PageSizeA4Width  = api.PageSizeA4Width
	PageSizeA4Height = api.PageSizeA4Height
	PageSizeA5Width  = api.PageSizeA5Width
	PageSizeA5Height = api.PageSizeA5Height

	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeLegalWidth   = api.PageSizeLegalWidth
	PageSizeLegalHeight  = api.PageSizeLegalHeight
)
