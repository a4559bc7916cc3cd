package res

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source is one discovered image: its path on disk, the display name printed
// under the image, and the raw file bytes. Pixel data is decoded lazily by
// the renderer so only one decoded image is in memory at a time.
type Source struct {
	Path     string
	Name     string
	Data     []byte
	MimeType string
}

// Loader discovers and reads image files from a directory.
type Loader struct {
	// Extensions is the set of accepted file extensions, lowercase with
	// leading dot. Defaults to the formats the registered decoders handle.
	Extensions []string
}

// DefaultExtensions lists the accepted image file extensions.
var DefaultExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp",
}

// NewLoader creates a new image loader with the default extension set.
func NewLoader() *Loader {
	return &Loader{Extensions: DefaultExtensions}
}

// Discover returns the image file paths in dir, sorted by filename. The scan
// is non-recursive and extension matching is case-insensitive.
func (l *Loader) Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if l.accepts(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	return paths, nil
}

// Load reads one image file into a Source. The file is not decoded here;
// use Measure for pixel dimensions.
func (l *Loader) Load(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to read image file: %w", err)
	}

	return Source{
		Path:     path,
		Name:     filepath.Base(path),
		Data:     data,
		MimeType: determineMimeType(path),
	}, nil
}

// accepts reports whether the filename has one of the accepted extensions.
func (l *Loader) accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range l.Extensions {
		if ext == accepted {
			return true
		}
	}
	return false
}

// Measure decodes just the image header and returns the pixel dimensions.
func Measure(s Source) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(s.Data))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image %s: %w", s.Name, err)
	}
	return cfg.Width, cfg.Height, nil
}

// determineMimeType determines the MIME type of an image file from its extension
func determineMimeType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".tiff", ".tif":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	default:
		return "application/octet-stream"
	}
}
