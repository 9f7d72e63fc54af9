package ocr

import "strings"

// DefaultMinWordConfidence is the confidence a word must exceed to survive
// reconstruction. Tesseract reports low-confidence fragments for specks and
// layout artifacts; dropping them loses little real text.
const DefaultMinWordConfidence = 30

// Text reassembles readable text from the structured hierarchy using the
// default confidence filter.
func (r Result) Text() string {
	return r.TextWithConfidence(DefaultMinWordConfidence)
}

// TextWithConfidence reassembles readable text, keeping only words whose
// confidence strictly exceeds minConfidence. Within a line, surviving words
// are joined by single spaces; non-empty lines within a paragraph are joined
// by line breaks; paragraphs are separated by a blank line. When no block or
// paragraph structure is present, the engine's flat text is returned
// instead.
func (r Result) TextWithConfidence(minConfidence float64) string {
	if !r.hasStructure() {
		return strings.TrimSpace(r.PlainText)
	}

	var paragraphs []string
	for _, block := range r.Blocks {
		for _, par := range block.Paragraphs {
			if text := paragraphText(par, minConfidence); text != "" {
				paragraphs = append(paragraphs, text)
			}
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

func (r Result) hasStructure() bool {
	for _, block := range r.Blocks {
		if len(block.Paragraphs) > 0 {
			return true
		}
	}
	return false
}

func paragraphText(par Paragraph, minConfidence float64) string {
	var lines []string
	for _, line := range par.Lines {
		if text := lineText(line, minConfidence); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

func lineText(line Line, minConfidence float64) string {
	var words []string
	for _, word := range line.Words {
		if word.Confidence > minConfidence {
			words = append(words, word.Text)
		}
	}
	return strings.TrimSpace(strings.Join(words, " "))
}
