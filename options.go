package pagetext

import (
	"github.com/pagetext/pagetext/layout"
	"github.com/pagetext/pagetext/normalize"
	"github.com/pagetext/pagetext/preprocess"
)

// ExtractOptions holds the pipeline configuration.
type ExtractOptions struct {
	minTextLength     int
	ocrScale          float64
	languages         []string
	layoutConfig      layout.Config
	preprocessConfig  preprocess.Config
	normalizeConfig   normalize.Config
	progress          ProgressFunc
	recognizerFactory RecognizerFactory
}

// defaultOptions returns the default pipeline configuration: English and
// Spanish recognition, the empirically tuned layout thresholds, and the
// standard Tesseract-backed recognizer.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		minTextLength:     DefaultMinTextLength,
		ocrScale:          DefaultOCRScale,
		languages:         []string{"eng", "spa"},
		layoutConfig:      layout.DefaultConfig(),
		preprocessConfig:  preprocess.DefaultConfig(),
		normalizeConfig:   normalize.DefaultConfig(),
		recognizerFactory: defaultRecognizerFactory,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o
	if o.languages != nil {
		newOpts.languages = make([]string, len(o.languages))
		copy(newOpts.languages, o.languages)
	}
	if o.normalizeConfig.SectionKeywords != nil {
		newOpts.normalizeConfig.SectionKeywords = make([]string, len(o.normalizeConfig.SectionKeywords))
		copy(newOpts.normalizeConfig.SectionKeywords, o.normalizeConfig.SectionKeywords)
	}
	return newOpts
}
