package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"github.com/book-expert/logger"
	"github.com/cheggaaa/pb/v3"

	"github.com/gridpdf/gridpdf/internal/layout"
	"github.com/gridpdf/gridpdf/internal/pagination"
	"github.com/gridpdf/gridpdf/internal/res"
)

// Renderer handles rendering paginated image groups to a PDF file.
type Renderer struct {
	// Geometry is the fixed page layout for the whole document.
	Geometry layout.PageGeometry
	// LabelFont is the font family used for filename labels.
	LabelFont string
	// LabelFontSize is the label size in points.
	LabelFontSize float64
	// LabelGap is the distance from an image's bottom edge to the label baseline.
	LabelGap float64
	// ProgressOutput is where the progress bar is written. Defaults to os.Stdout;
	// set to io.Discard to disable it for tests.
	ProgressOutput io.Writer

	// Drawn and Skipped count images across the last Render call.
	Drawn   int
	Skipped int

	loader *res.Loader
	log    *logger.Logger
}

// RenderOptions contains document metadata for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// NewRenderer creates a new PDF renderer. The logger may be nil, in which
// case skip notices are dropped.
func NewRenderer(geometry layout.PageGeometry, log *logger.Logger) *Renderer {
	return &Renderer{
		Geometry:       geometry,
		LabelFont:      "Helvetica",
		LabelFontSize:  8,
		LabelGap:       14,
		ProgressOutput: os.Stdout,
		loader:         res.NewLoader(),
		log:            log,
	}
}

// Render renders pages to a PDF file. Geometry problems and output I/O errors
// are fatal; a single unreadable or undecodable image is skipped with a notice,
// leaving its grid slot vacant. No output file is left behind on failure.
func (r *Renderer) Render(pages []*pagination.Page, outputPath string, options RenderOptions) error {
	r.Drawn, r.Skipped = 0, 0

	cell, err := layout.Compute(r.Geometry)
	if err != nil {
		return err
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: r.Geometry.PageWidth, Ht: r.Geometry.PageHeight},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(options.Title, true)
	doc.SetAuthor(options.Author, true)
	doc.SetSubject(options.Subject, true)
	doc.SetKeywords(options.Keywords, true)
	doc.SetCreator(options.Creator, true)
	doc.SetProducer(options.Producer, true)
	doc.SetFont(r.LabelFont, "", r.LabelFontSize)

	total := 0
	for _, page := range pages {
		total += len(page.Sources)
	}

	progressOut := r.ProgressOutput
	if progressOut == nil {
		progressOut = os.Stdout
	}
	bar := pb.New(total).
		SetTemplateString(`{{ bar . " " "━" "━" " " " "}} {{percent .}} {{rtime .}}`).
		SetWriter(progressOut).
		Start()
	defer bar.Finish()

	for pageNum, page := range pages {
		doc.AddPage()
		for i, src := range page.Sources {
			bar.Increment()
			if drawErr := r.drawImage(doc, cell, pageNum, i, src); drawErr != nil {
				r.Skipped++
				r.warnf("skipping %s: %v", src.Name, drawErr)
				continue
			}
			r.Drawn++
		}
	}

	if docErr := doc.Error(); docErr != nil {
		return fmt.Errorf("failed to build PDF document: %w", docErr)
	}

	return r.writeOutput(doc, outputPath)
}

// drawImage loads, measures, fits, and draws one image plus its filename
// label. The decoded pixel data is released before the next image is touched.
func (r *Renderer) drawImage(doc *fpdf.Fpdf, cell layout.CellGeometry, pageNum, i int, src res.Source) error {
	if src.Data == nil {
		loaded, err := r.loader.Load(src.Path)
		if err != nil {
			return err
		}
		src = loaded
	}

	naturalW, naturalH, err := res.Measure(src)
	if err != nil {
		return err
	}

	data, imageType, err := embeddable(src)
	if err != nil {
		return err
	}

	textWidth := doc.GetStringWidth(src.Name)
	img, lbl, err := planCell(cell, r.Geometry.Columns, i,
		float64(naturalW), float64(naturalH), src.Name, textWidth, r.LabelGap)
	if err != nil {
		return err
	}

	name := src.Path
	if name == "" {
		name = src.Name
	}
	// Slot-qualified key: two in-memory sources sharing a display name must
	// not collide in the image registry.
	key := fmt.Sprintf("%d-%d:%s", pageNum, i, name)
	opts := fpdf.ImageOptions{ImageType: imageType, ReadDpi: false}
	doc.RegisterImageOptionsReader(key, opts, bytes.NewReader(data))
	doc.ImageOptions(key, img.X, img.Y, img.Width, img.Height, false, opts, 0, "")
	doc.Text(lbl.X, lbl.Y, lbl.Text)

	return nil
}

// embeddable returns the image bytes in a form fpdf can embed. JPEG, PNG, and
// GIF files pass through untouched; other decodable formats are re-encoded
// as PNG. Every image is fully decoded first: the PDF backend cannot recover
// from a corrupt body mid-document, and a truncated file passes header-only
// checks.
func embeddable(src res.Source) ([]byte, string, error) {
	decoded, _, err := image.Decode(bytes.NewReader(src.Data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", src.Name, err)
	}

	switch src.MimeType {
	case "image/jpeg":
		return src.Data, "JPG", nil
	case "image/png":
		return src.Data, "PNG", nil
	case "image/gif":
		return src.Data, "GIF", nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, decoded); err != nil {
		return nil, "", fmt.Errorf("failed to convert image %s: %w", src.Name, err)
	}

	return buf.Bytes(), "PNG", nil
}

// writeOutput writes the finished document through a temporary file and
// renames it into place, so a failed run never leaves a half-written PDF
// that looks complete.
func (r *Renderer) writeOutput(doc *fpdf.Fpdf, outputPath string) error {
	outputDir := filepath.Dir(outputPath)
	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(outputDir, ".gridpdf-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := doc.OutputAndClose(tmp); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move PDF into place: %w", err)
	}

	return nil
}

func (r *Renderer) warnf(format string, args ...any) {
	if r.log != nil {
		r.log.Warn(format, args...)
	}
}
