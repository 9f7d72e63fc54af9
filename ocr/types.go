// Package ocr drives an external recognition capability (Tesseract, via
// gosseract) and reassembles readable text from its structured output.
//
// The recognition client requires Tesseract to be installed and is gated
// behind the "ocr" build tag. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// The result model and text reconstruction are pure and always available.
package ocr

import "fmt"

// Box is a rectangular region in image pixel coordinates, origin top-left.
type Box struct {
	X0, Y0, X1, Y1 int
}

// Word is a single recognized token. Confidence is the engine's reliability
// estimate in [0, 100] and is used as a noise filter during reconstruction.
type Word struct {
	Text       string
	Confidence float64
	Box        Box
}

// Line groups words that share a baseline.
type Line struct {
	Words []Word
	Box   Box
}

// Paragraph groups lines that form one logical paragraph.
type Paragraph struct {
	Lines []Line
	Box   Box
}

// Block is a top-level page region (column, heading, caption).
type Block struct {
	Paragraphs []Paragraph
	Box        Box
}

// Result captures the recognition output for a single page: the structured
// Block → Paragraph → Line → Word hierarchy plus the engine's flat text as a
// fallback when no structure was produced.
type Result struct {
	Blocks    []Block
	PlainText string
}

// RecognitionError reports that the recognition capability failed to
// initialize or to process a page. Page is zero when the failure is not tied
// to a specific page.
type RecognitionError struct {
	Page int
	Err  error
}

func (e *RecognitionError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("recognize page %d: %v", e.Page, e.Err)
	}
	return fmt.Sprintf("recognition: %v", e.Err)
}

func (e *RecognitionError) Unwrap() error { return e.Err }
