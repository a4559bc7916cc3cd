package api

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/book-expert/logger"

	"github.com/gridpdf/gridpdf/internal/layout"
	"github.com/gridpdf/gridpdf/internal/pagination"
	"github.com/gridpdf/gridpdf/internal/render/pdf"
	"github.com/gridpdf/gridpdf/internal/res"
)

// Sentinel errors for generation.
var (
	// ErrNoImages means the input holds no acceptable image files.
	ErrNoImages = errors.New("no image files found")
)

// Source is one image to place on the contact sheet. Name is the label
// printed under the image. Data may be nil, in which case the file at Path
// is read at render time.
type Source struct {
	Path string
	Name string
	Data []byte
}

// Generator is the main API for turning a batch of images into a single
// multi-page contact sheet PDF.
type Generator struct {
	options Options
	loader  *res.Loader
	log     *logger.Logger
}

// New creates a new generator with default options
func New() *Generator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new generator with the specified options
func NewWithOptions(options Options) *Generator {
	loader := res.NewLoader()
	if len(options.Extensions) > 0 {
		loader.Extensions = options.Extensions
	}
	return &Generator{
		options: options,
		loader:  loader,
	}
}

// WithOptions returns a new generator with the specified options
func (g *Generator) WithOptions(options Options) *Generator {
	gen := NewWithOptions(options)
	gen.log = g.log
	return gen
}

// WithOption returns a new generator with the specified option set
func (g *Generator) WithOption(option Option) *Generator {
	newOptions := g.options
	option(&newOptions)
	return g.WithOptions(newOptions)
}

// SetLogger sets the logger used for skip notices and run summaries
func (g *Generator) SetLogger(log *logger.Logger) *Generator {
	g.log = log
	return g
}

// GenerateFromDir scans inputDir for image files, sorted by filename, and
// writes a single multi-page PDF to outputPath. It fails when the directory
// cannot be read or holds no acceptable images; an individual broken image
// only costs its grid slot.
func (g *Generator) GenerateFromDir(inputDir, outputPath string) error {
	paths, err := g.loader.Discover(inputDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("%w in %s", ErrNoImages, inputDir)
	}

	g.infof("Found %d image(s) in %s", len(paths), inputDir)

	sources := make([]Source, 0, len(paths))
	for _, path := range paths {
		sources = append(sources, Source{Path: path})
	}

	return g.Generate(sources, outputPath)
}

// Generate writes the given images to a single multi-page PDF at outputPath.
// Images are laid out in input order, Columns x Rows per page.
func (g *Generator) Generate(sources []Source, outputPath string) error {
	if len(sources) == 0 {
		return ErrNoImages
	}

	resSources := make([]res.Source, 0, len(sources))
	for _, s := range sources {
		name := s.Name
		if name == "" && s.Path != "" {
			name = filepath.Base(s.Path)
		}
		resSources = append(resSources, res.Source{
			Path: s.Path,
			Name: name,
			Data: s.Data,
		})
	}

	geometry := layout.PageGeometry{
		PageWidth:  g.options.PageWidth,
		PageHeight: g.options.PageHeight,
		Margins: layout.Margins{
			Top:    g.options.MarginTop,
			Right:  g.options.MarginRight,
			Bottom: g.options.MarginBottom,
			Left:   g.options.MarginLeft,
		},
		Columns: g.options.Columns,
		Rows:    g.options.Rows,
	}

	paginationEngine := pagination.NewEngine()
	paginationEngine.SetOptions(pagination.Options{
		PageWidth:  g.options.PageWidth,
		PageHeight: g.options.PageHeight,
		Columns:    g.options.Columns,
		Rows:       g.options.Rows,
	})
	pages := paginationEngine.Paginate(resSources)

	g.infof("Rendering %d image(s) across %d page(s)", len(resSources), len(pages))

	renderer := pdf.NewRenderer(geometry, g.log)
	renderer.LabelFont = g.options.LabelFont
	renderer.LabelFontSize = g.options.LabelFontSize
	renderer.LabelGap = g.options.LabelGap
	if g.options.ProgressOutput != nil {
		renderer.ProgressOutput = g.options.ProgressOutput
	}

	renderOptions := pdf.RenderOptions{
		Title:    g.options.Title,
		Author:   g.options.Author,
		Subject:  g.options.Subject,
		Keywords: g.options.Keywords,
		Creator:  "GridPDF",
		Producer: "GridPDF",
	}

	if err := renderer.Render(pages, outputPath, renderOptions); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	g.successf("PDF generated: %s (%d drawn, %d skipped)",
		outputPath, renderer.Drawn, renderer.Skipped)

	return nil
}

func (g *Generator) infof(format string, args ...any) {
	if g.log != nil {
		g.log.Info(format, args...)
	}
}

func (g *Generator) successf(format string, args ...any) {
	if g.log != nil {
		g.log.Success(format, args...)
	}
}
