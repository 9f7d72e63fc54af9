package pagetext

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/pagetext/pagetext/layout"
	"github.com/pagetext/pagetext/normalize"
	"github.com/pagetext/pagetext/preprocess"
	"github.com/pagetext/pagetext/reader"
)

// Pipeline runs the extraction for one document. Each configuration method
// returns a new Pipeline instance, making chains safe to share and reuse.
// Pages are processed strictly sequentially: the recognition capability is
// single-instance and stateful, and deterministic page ordering keeps the
// public contract simple.
type Pipeline struct {
	// Source (exactly one is used)
	filename string
	data     []byte
	doc      Document

	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Pipeline with a deep copy of options.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		filename: p.filename,
		data:     p.data,
		doc:      p.doc,
		options:  p.options.clone(),
		err:      p.err,
	}
}

// ============================================================================
// Configuration methods (each returns a new Pipeline instance)
// ============================================================================

// Languages sets the Tesseract language codes used when the OCR path runs.
//
// Example:
//
//	outcome, err := pagetext.Open("cv.pdf").Languages("eng", "deu").Extract(ctx)
func (p *Pipeline) Languages(languages ...string) *Pipeline {
	newP := p.clone()
	newP.options.languages = append([]string(nil), languages...)
	return newP
}

// MinTextLength sets the trimmed text length below which the standard path
// is judged insufficient and the document falls back to OCR.
func (p *Pipeline) MinTextLength(length int) *Pipeline {
	newP := p.clone()
	newP.options.minTextLength = length
	return newP
}

// OCRScale sets the rasterization scale used for recognition.
func (p *Pipeline) OCRScale(scale float64) *Pipeline {
	newP := p.clone()
	if scale <= 0 {
		newP.err = errors.New("ocr scale must be positive")
		return newP
	}
	newP.options.ocrScale = scale
	return newP
}

// WithLayoutConfig overrides the reading-order reconstruction thresholds.
func (p *Pipeline) WithLayoutConfig(config layout.Config) *Pipeline {
	newP := p.clone()
	newP.options.layoutConfig = config
	return newP
}

// WithPreprocessConfig overrides the OCR image preprocessing parameters.
func (p *Pipeline) WithPreprocessConfig(config preprocess.Config) *Pipeline {
	newP := p.clone()
	newP.options.preprocessConfig = config
	return newP
}

// WithNormalizeConfig overrides the text normalizer configuration.
func (p *Pipeline) WithNormalizeConfig(config normalize.Config) *Pipeline {
	newP := p.clone()
	newP.options.normalizeConfig = config
	return newP
}

// OnProgress registers a consumer for progress events. The consumer is
// invoked synchronously and must not block.
func (p *Pipeline) OnProgress(fn ProgressFunc) *Pipeline {
	newP := p.clone()
	newP.options.progress = fn
	return newP
}

// WithRecognizerFactory overrides how the OCR recognizer is created, for
// custom engines or tests. The factory is only invoked when the OCR branch
// is actually taken.
func (p *Pipeline) WithRecognizerFactory(factory RecognizerFactory) *Pipeline {
	newP := p.clone()
	newP.options.recognizerFactory = factory
	return newP
}

// ============================================================================
// Terminal operation
// ============================================================================

// Extract runs the pipeline to completion and returns the outcome. The
// standard glyph-run path runs first across all pages; if its trimmed output
// is shorter than the configured minimum, the whole document is re-processed
// through the OCR path. The result always passes through the normalizer.
//
// Errors from the loader abort the run; errors from recognition abort after
// the recognizer has been released. There is no cancellation once a page is
// being processed: a started document runs to completion or failure.
func (p *Pipeline) Extract(ctx context.Context) (*Outcome, error) {
	if p.err != nil {
		return nil, p.err
	}

	doc, ownsDoc, err := p.openDocument()
	if err != nil {
		return nil, err
	}
	if ownsDoc {
		defer doc.Close()
	}

	numPages := doc.PageCount()
	p.emit(ProgressEvent{Phase: PhaseExtractingText, TotalPages: numPages})

	pageTexts, err := p.extractTextPages(doc, numPages)
	if err != nil {
		return nil, err
	}
	text := strings.Join(pageTexts, PageSeparator)

	// The threshold is counted in characters, not bytes, so accented text
	// does not dodge the fallback.
	method := MethodText
	if utf8.RuneCountInString(strings.TrimSpace(text)) < p.options.minTextLength {
		method = MethodOCR
		text, err = p.recognizePages(ctx, doc, numPages)
		if err != nil {
			return nil, err
		}
	}

	p.emit(ProgressEvent{Phase: PhaseNormalizing, TotalPages: numPages})
	text = normalize.NewWithConfig(p.options.normalizeConfig).Text(text)
	p.emit(ProgressEvent{Phase: PhaseDone, Progress: 100, TotalPages: numPages})

	return &Outcome{Text: text, NumPages: numPages, Method: method}, nil
}

func (p *Pipeline) openDocument() (Document, bool, error) {
	if p.doc != nil {
		return p.doc, false, nil
	}

	p.emit(ProgressEvent{Phase: PhaseLoading})

	switch {
	case p.data != nil:
		doc, err := reader.FromBytes(p.data)
		if err != nil {
			return nil, false, err
		}
		return doc, true, nil
	case p.filename != "":
		doc, err := reader.Open(p.filename)
		if err != nil {
			return nil, false, err
		}
		return doc, true, nil
	default:
		return nil, false, errors.New("no document source specified")
	}
}

// extractTextPages runs the standard path: one reading-order string per
// page, in page order. A page without text-bearing runs contributes an
// empty string (the page separator is still emitted between pages).
func (p *Pipeline) extractTextPages(doc Document, numPages int) ([]string, error) {
	extractor := layout.NewExtractorWithConfig(p.options.layoutConfig)

	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		runs, err := doc.GlyphRuns(i)
		if err != nil {
			return nil, err
		}
		width, _, err := doc.Viewport(i, 1.0)
		if err != nil {
			return nil, err
		}
		pages = append(pages, extractor.PageText(runs, width))
		p.emit(ProgressEvent{Phase: PhaseExtractingText, Progress: i * 100 / numPages, Page: i, TotalPages: numPages})
	}
	return pages, nil
}

// recognizePages runs the OCR fallback across every page; the branch is
// all-or-nothing per document. The recognizer is acquired once to amortize
// initialization and released on every exit path, including failures.
func (p *Pipeline) recognizePages(ctx context.Context, doc Document, numPages int) (text string, err error) {
	p.emit(ProgressEvent{Phase: PhaseInitializingOCR, TotalPages: numPages})

	rec, err := p.options.recognizerFactory(p.options.languages)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := rec.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := i
		p.emit(ProgressEvent{Phase: PhaseRecognizing, Progress: (page - 1) * 100 / numPages, Page: page, TotalPages: numPages})
		rec.OnProgress(func(percent int) {
			p.emit(ProgressEvent{Phase: PhaseRecognizing, Progress: percent, Page: page, TotalPages: numPages})
		})

		img, err := doc.RenderPage(page, p.options.ocrScale)
		if err != nil {
			return "", err
		}

		// Both buffers are scoped to this iteration, so peak memory stays at
		// roughly one high-resolution page regardless of document length.
		prepped := preprocess.ForOCRWithConfig(img, p.options.preprocessConfig)
		result, err := rec.Recognize(ctx, prepped)
		if err != nil {
			return "", err
		}
		pages = append(pages, result.Text())
	}

	p.emit(ProgressEvent{Phase: PhaseRecognizing, Progress: 100, TotalPages: numPages})
	return strings.Join(pages, PageSeparator), nil
}

func (p *Pipeline) emit(ev ProgressEvent) {
	if p.options.progress != nil {
		p.options.progress(ev)
	}
}
