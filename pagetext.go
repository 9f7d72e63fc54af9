// Package pagetext turns an arbitrary PDF document into clean, reading-order
// plain text, automatically choosing between direct text extraction and
// optical character recognition depending on the document's nature.
//
// Basic usage:
//
//	outcome, err := pagetext.Open("resume.pdf").Extract(context.Background())
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(outcome.Text)
//
// With options:
//
//	outcome, err := pagetext.FromBytes(data).
//	    Languages("eng", "spa").
//	    MinTextLength(120).
//	    OnProgress(func(ev pagetext.ProgressEvent) { log.Println(ev) }).
//	    Extract(ctx)
//
// The standard path reconstructs reading order from the document's
// positioned glyph runs. When that yields less than the minimum text length,
// the whole document falls back to the OCR path: each page is rasterized,
// preprocessed, and recognized. Either way the result passes through the
// text normalizer before being returned.
package pagetext

import (
	"context"
	"image"
	"strings"

	"github.com/pagetext/pagetext/ocr"
	"github.com/pagetext/pagetext/reader"
)

// PageSeparator joins per-page text on both extraction paths. It is a blank
// line, not visible content, and the normalizer's blank-line cap keeps runs
// of empty pages from accumulating.
const PageSeparator = "\n\n"

// DefaultMinTextLength is the trimmed text length below which the standard
// path is judged insufficient and the document falls back to OCR.
const DefaultMinTextLength = 80

// DefaultOCRScale is the rasterization scale for recognition. High scale
// preserves the character detail small glyphs need.
const DefaultOCRScale = 3.0

// Method identifies which extraction path produced the text.
type Method string

const (
	// MethodText means the document's own glyph runs produced the text.
	MethodText Method = "text"
	// MethodOCR means the text was recognized from rasterized pages.
	MethodOCR Method = "ocr"
)

// Outcome is the pipeline's sole externally visible result. NumPages always
// equals the loader's reported page count, regardless of which method
// produced the text.
type Outcome struct {
	Text     string
	NumPages int
	Method   Method
}

// WordCount returns the number of whitespace-separated words in the text.
func (o *Outcome) WordCount() int {
	return len(strings.Fields(o.Text))
}

// Document is the page-access capability the pipeline consumes. Pages are
// 1-indexed. *reader.Document is the standard implementation.
type Document interface {
	PageCount() int
	GlyphRuns(pageNum int) ([]reader.GlyphRun, error)
	Viewport(pageNum int, scale float64) (width, height float64, err error)
	RenderPage(pageNum int, scale float64) (image.Image, error)
	Close() error
}

// Recognizer is the recognition capability the OCR path consumes.
// *ocr.Client is the standard implementation.
type Recognizer interface {
	OnProgress(fn func(percent int))
	Recognize(ctx context.Context, img image.Image) (ocr.Result, error)
	Close() error
}

// RecognizerFactory creates a Recognizer for one document's OCR pass. It is
// invoked only when the pipeline actually takes the OCR branch.
type RecognizerFactory func(languages []string) (Recognizer, error)

func defaultRecognizerFactory(languages []string) (Recognizer, error) {
	client, err := ocr.NewClient(languages...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Open creates a Pipeline reading the document from a file.
func Open(filename string) *Pipeline {
	return &Pipeline{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes creates a Pipeline reading the document from raw PDF file
// contents.
func FromBytes(data []byte) *Pipeline {
	return &Pipeline{
		data:    data,
		options: defaultOptions(),
	}
}

// FromDocument creates a Pipeline over an already-opened Document. The
// caller retains ownership and is responsible for closing it.
func FromDocument(doc Document) *Pipeline {
	return &Pipeline{
		doc:     doc,
		options: defaultOptions(),
	}
}
