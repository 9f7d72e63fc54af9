// Package layout reconstructs reading order from unordered positioned glyph
// runs. PDF content streams carry no paragraph or line structure, so lines,
// columns, and word boundaries are all inferred from page geometry.
package layout

import (
	"strings"

	"github.com/pagetext/pagetext/reader"
)

// Config holds the geometric thresholds used for reading-order
// reconstruction. The defaults are empirically tuned and intentionally
// preserved as-is; behavior parity matters more than re-derived "better"
// values.
type Config struct {
	// FallbackFontSize is used for runs that report no usable font size.
	// Default: 10 points.
	FallbackFontSize float64

	// LineThresholdRatio, applied to the page's average font size, yields the
	// maximum vertical distance between two runs on the same line.
	// Default: 0.4.
	LineThresholdRatio float64

	// MinLineThreshold is the floor for the line grouping threshold, in page
	// units. Font-derived thresholds must never reach zero. Default: 2.
	MinLineThreshold float64

	// SpaceWidthRatio, applied to the average font size, estimates the width
	// of a single space. Default: 0.3.
	SpaceWidthRatio float64

	// WordGapRatio is the fraction of a space width at or below which two
	// adjacent runs are considered part of the same word. Default: 0.5.
	WordGapRatio float64

	// TabGapRatio is the multiple of a space width above which a gap is
	// treated as a column- or tab-like break. Default: 6.
	TabGapRatio float64

	// TabSeparator is emitted for tab-like gaps. Default: four spaces.
	TabSeparator string

	// FullWidthRatio is the fraction of the page width a line's horizontal
	// span must exceed to count as full width (e.g. a name header).
	// Default: 0.6.
	FullWidthRatio float64

	// LeftLeanRatio and RightLeanRatio classify lines by their average X
	// relative to half the page width: below LeftLeanRatio*midpoint is
	// left-leaning, above RightLeanRatio*midpoint is right-leaning.
	// Defaults: 0.6 and 0.8.
	LeftLeanRatio  float64
	RightLeanRatio float64

	// LeftBucketRatio assigns a non-full-width line to the left column when
	// its average X is below LeftBucketRatio*midpoint. Default: 0.7.
	LeftBucketRatio float64

	// MinLinesPerSide is the number of leaning lines each side must exceed
	// for a page to be treated as two-column. Default: 3.
	MinLinesPerSide int

	// MinCountRatio is the minimum min/max ratio of left-leaning to
	// right-leaning line counts for a two-column decision. Default: 0.25.
	MinCountRatio float64
}

// DefaultConfig returns the default reconstruction thresholds.
func DefaultConfig() Config {
	return Config{
		FallbackFontSize:   10,
		LineThresholdRatio: 0.4,
		MinLineThreshold:   2,
		SpaceWidthRatio:    0.3,
		WordGapRatio:       0.5,
		TabGapRatio:        6,
		TabSeparator:       "    ",
		FullWidthRatio:     0.6,
		LeftLeanRatio:      0.6,
		RightLeanRatio:     0.8,
		LeftBucketRatio:    0.7,
		MinLinesPerSide:    3,
		MinCountRatio:      0.25,
	}
}

// Extractor converts a page's positioned glyph runs into reading-order text.
type Extractor struct {
	config Config
}

// NewExtractor creates an extractor with default configuration.
func NewExtractor() *Extractor {
	return &Extractor{config: DefaultConfig()}
}

// NewExtractorWithConfig creates an extractor with custom thresholds.
func NewExtractorWithConfig(config Config) *Extractor {
	return &Extractor{config: config}
}

// PageText reconstructs the reading-order text of one page from its glyph
// runs. A page with no text-bearing runs yields an empty string.
func (e *Extractor) PageText(runs []reader.GlyphRun, pageWidth float64) string {
	runs = dropEmptyRuns(runs)
	if len(runs) == 0 {
		return ""
	}

	avgFontSize := averageFontSize(runs, e.config.FallbackFontSize)
	threshold := e.lineThreshold(avgFontSize)

	lines := foldIntoLines(sortRuns(runs, threshold), threshold)

	if e.isTwoColumn(lines, pageWidth) {
		return e.twoColumnText(lines, pageWidth, avgFontSize)
	}
	return e.linesText(lines, avgFontSize)
}

// lineThreshold derives the same-line vertical tolerance from the average
// font size, clamped so it can never be zero or negative.
func (e *Extractor) lineThreshold(avgFontSize float64) float64 {
	threshold := avgFontSize * e.config.LineThresholdRatio
	if threshold < e.config.MinLineThreshold {
		threshold = e.config.MinLineThreshold
	}
	return threshold
}

// linesText emits lines in sorted order, assembling each with gap-derived
// separators.
func (e *Extractor) linesText(lines []Line, avgFontSize float64) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, e.lineText(line, avgFontSize))
	}
	return strings.Join(parts, "\n")
}

// lineText assembles one line's text left to right. The separator between
// adjacent runs depends on the horizontal gap relative to an estimated space
// width: none within the same word, a single space between words, and a
// tab-like separator across column or tab breaks.
func (e *Extractor) lineText(line Line, avgFontSize float64) string {
	runs := line.sortedByX()
	spaceWidth := avgFontSize * e.config.SpaceWidthRatio

	var sb strings.Builder
	for i, run := range runs {
		if i > 0 {
			prev := runs[i-1]
			gap := run.X - (prev.X + prev.Width)
			switch {
			case gap <= spaceWidth*e.config.WordGapRatio:
				// Same word.
			case gap <= spaceWidth*e.config.TabGapRatio:
				sb.WriteString(" ")
			default:
				sb.WriteString(e.config.TabSeparator)
			}
		}
		sb.WriteString(run.Text)
	}
	return sb.String()
}

func dropEmptyRuns(runs []reader.GlyphRun) []reader.GlyphRun {
	kept := make([]reader.GlyphRun, 0, len(runs))
	for _, r := range runs {
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// averageFontSize returns the mean font size of the runs, substituting
// fallback for runs that report no usable size.
func averageFontSize(runs []reader.GlyphRun, fallback float64) float64 {
	if len(runs) == 0 {
		return fallback
	}
	total := 0.0
	for _, r := range runs {
		size := r.FontSize
		if size <= 0 {
			size = fallback
		}
		total += size
	}
	return total / float64(len(runs))
}
