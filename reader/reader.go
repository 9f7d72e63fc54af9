// Package reader provides page-level access to PDF documents: page counting,
// positioned glyph runs for layout reconstruction, and page rasterization for
// OCR and preview rendering.
//
// Parsing is delegated to ledongthuc/pdf for positioned text, pdfcpu for
// structural validation, and MuPDF (via go-fitz) for rendering. A malformed
// document is a terminal failure reported as *LoadError; there are no retries.
package reader

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// GlyphRun is a contiguous run of extracted characters with a known baseline
// position, advance width, and font size, all in page units (points, origin
// at the bottom-left of the page).
type GlyphRun struct {
	Text     string
	X, Y     float64
	Width    float64
	FontSize float64
}

// LoadError reports that a byte buffer could not be parsed as a PDF.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load pdf: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Document represents a loaded PDF. It is not safe for concurrent use; each
// extraction run owns its own Document for its lifetime.
type Document struct {
	pdfReader *pdf.Reader
	fitzDoc   *fitz.Document
	pageCount int
}

// FromBytes loads a PDF from raw file contents.
func FromBytes(data []byte) (doc *Document, err error) {
	// The lenient text reader can panic on truncated cross-reference data.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = &LoadError{Err: fmt.Errorf("parse pdf: %v", r)}
		}
	}()

	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	// Structural cross-check with relaxed validation. This catches documents
	// the lenient reader accepts but that have no usable page tree.
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if _, err := api.PageCount(bytes.NewReader(data), conf); err != nil {
		return nil, &LoadError{Err: fmt.Errorf("validate pdf: %w", err)}
	}

	fitzDoc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("open renderer: %w", err)}
	}

	return &Document{
		pdfReader: pdfReader,
		fitzDoc:   fitzDoc,
		pageCount: pdfReader.NumPage(),
	}, nil
}

// Open loads a PDF from a file on disk.
func Open(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return FromBytes(data)
}

// Close releases the renderer resources held by the Document.
// It is safe to call Close multiple times.
func (d *Document) Close() error {
	if d.fitzDoc != nil {
		err := d.fitzDoc.Close()
		d.fitzDoc = nil
		return err
	}
	return nil
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.pageCount
}

// GlyphRuns returns the positioned text runs of a page (1-indexed). Runs
// whose trimmed text is empty are discarded. A page with no text-bearing
// runs is a valid, expected case (e.g. a blank or image-only page) and
// returns an empty slice.
func (d *Document) GlyphRuns(pageNum int) (runs []GlyphRun, err error) {
	if pageNum < 1 || pageNum > d.pageCount {
		return nil, fmt.Errorf("page %d out of range [1, %d]", pageNum, d.pageCount)
	}

	// Content() walks the page's content streams and can panic on fonts with
	// broken encoding dictionaries. Treat that as a page with no usable runs.
	defer func() {
		if r := recover(); r != nil {
			runs = nil
			err = nil
		}
	}()

	page := d.pdfReader.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}

	content := page.Content()
	runs = make([]GlyphRun, 0, len(content.Text))
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		runs = append(runs, GlyphRun{
			Text:     t.S,
			X:        t.X,
			Y:        t.Y,
			Width:    t.W,
			FontSize: t.FontSize,
		})
	}
	return runs, nil
}

// Viewport returns the page dimensions at the given scale, in page units
// multiplied by scale. Pages are 1-indexed.
func (d *Document) Viewport(pageNum int, scale float64) (width, height float64, err error) {
	if pageNum < 1 || pageNum > d.pageCount {
		return 0, 0, fmt.Errorf("page %d out of range [1, %d]", pageNum, d.pageCount)
	}

	bounds, err := d.fitzDoc.Bound(pageNum - 1)
	if err != nil {
		return 0, 0, fmt.Errorf("page %d bounds: %w", pageNum, err)
	}

	return float64(bounds.Dx()) * scale, float64(bounds.Dy()) * scale, nil
}
