package api

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/book-expert/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func pdfPageCount(t *testing.T, path string) int {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	assert.InDelta(t, 595.28, opts.PageWidth, 1e-9)
	assert.InDelta(t, 841.89, opts.PageHeight, 1e-9)
	assert.InDelta(t, 85.0, opts.MarginTop, 1e-9)
	assert.InDelta(t, 85.0, opts.MarginLeft, 1e-9)
	assert.Equal(t, 2, opts.Columns)
	assert.Equal(t, 3, opts.Rows)
	assert.Equal(t, "Helvetica", opts.LabelFont)
	assert.InDelta(t, 8.0, opts.LabelFontSize, 1e-9)
	assert.InDelta(t, 14.0, opts.LabelGap, 1e-9)
}

func TestFunctionalOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	for _, opt := range []Option{
		WithPageSizeLetter(),
		WithMargins(10, 20, 30, 40),
		WithGrid(3, 4),
		WithLabelFont("Courier", 10),
		WithLabelGap(12),
		WithTitle("holiday"),
	} {
		opt(&opts)
	}

	assert.InDelta(t, 612.0, opts.PageWidth, 1e-9)
	assert.InDelta(t, 792.0, opts.PageHeight, 1e-9)
	assert.InDelta(t, 10.0, opts.MarginTop, 1e-9)
	assert.InDelta(t, 40.0, opts.MarginLeft, 1e-9)
	assert.Equal(t, 3, opts.Columns)
	assert.Equal(t, 4, opts.Rows)
	assert.Equal(t, "Courier", opts.LabelFont)
	assert.InDelta(t, 12.0, opts.LabelGap, 1e-9)
	assert.Equal(t, "holiday", opts.Title)
}

func testGenerator(t *testing.T) *Generator {
	t.Helper()

	log, err := logger.New(t.TempDir(), "test.log")
	require.NoError(t, err)
	t.Cleanup(func() { _ = log.Close() })

	return New().
		WithOption(WithProgressOutput(io.Discard)).
		SetLogger(log)
}

func TestGenerateFromDir(t *testing.T) {
	t.Parallel()

	t.Run("Seven mixed images make a two page document", func(t *testing.T) {
		t.Parallel()

		inputDir := t.TempDir()
		for i := 0; i < 7; i++ {
			w, h := 60, 40
			if i%2 == 1 {
				w, h = 40, 60
			}
			writePNG(t, filepath.Join(inputDir, fmt.Sprintf("img_%d.png", i)), w, h)
		}

		outputPath := filepath.Join(t.TempDir(), "out.pdf")
		require.NoError(t, testGenerator(t).GenerateFromDir(inputDir, outputPath))

		data, err := os.ReadFile(outputPath)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
		assert.Equal(t, 2, pdfPageCount(t, outputPath))
	})

	t.Run("Directory without images is an error", func(t *testing.T) {
		t.Parallel()

		outputPath := filepath.Join(t.TempDir(), "out.pdf")
		err := testGenerator(t).GenerateFromDir(t.TempDir(), outputPath)
		require.ErrorIs(t, err, ErrNoImages)

		_, statErr := os.Stat(outputPath)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("Missing directory is an error", func(t *testing.T) {
		t.Parallel()

		err := testGenerator(t).GenerateFromDir(
			filepath.Join(t.TempDir(), "missing"),
			filepath.Join(t.TempDir(), "out.pdf"),
		)
		require.Error(t, err)
	})

	t.Run("A corrupt image only costs its slot", func(t *testing.T) {
		t.Parallel()

		inputDir := t.TempDir()
		for _, name := range []string{"a.png", "b.png", "d.png", "e.png"} {
			writePNG(t, filepath.Join(inputDir, name), 50, 50)
		}
		require.NoError(t, os.WriteFile(
			filepath.Join(inputDir, "c.jpg"), []byte("definitely not a jpeg"), 0o644))

		outputPath := filepath.Join(t.TempDir(), "out.pdf")
		require.NoError(t, testGenerator(t).GenerateFromDir(inputDir, outputPath))
		assert.Equal(t, 1, pdfPageCount(t, outputPath))
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("Empty source list is an error", func(t *testing.T) {
		t.Parallel()

		err := testGenerator(t).Generate(nil, filepath.Join(t.TempDir(), "out.pdf"))
		require.ErrorIs(t, err, ErrNoImages)
	})

	t.Run("In-memory sources render without touching disk inputs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 30, 30))))

		sources := []Source{{Name: "mem.png", Data: buf.Bytes()}}
		outputPath := filepath.Join(t.TempDir(), "out.pdf")
		require.NoError(t, testGenerator(t).Generate(sources, outputPath))
		assert.Equal(t, 1, pdfPageCount(t, outputPath))
	})
}

func TestWithOptionReturnsNewGenerator(t *testing.T) {
	t.Parallel()

	base := New()
	custom := base.WithOption(WithGrid(4, 4))
	assert.Equal(t, 2, base.options.Columns)
	assert.Equal(t, 4, custom.options.Columns)
}
