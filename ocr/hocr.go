package ocr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// hOCR element classes emitted by Tesseract. Content areas map to blocks;
// headers, captions, and text floats all behave as lines.
var hocrLineClasses = map[string]bool{
	"ocr_line":      true,
	"ocr_header":    true,
	"ocr_caption":   true,
	"ocr_textfloat": true,
}

// ParseHOCR builds the Block → Paragraph → Line → Word hierarchy from hOCR
// markup. Elements without recognizable content are dropped; a document with
// no content areas yields an empty slice, which callers treat as "no
// structure present".
func ParseHOCR(src string) ([]Block, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	var blocks []Block
	collectBlocks(doc, &blocks)
	return blocks, nil
}

func collectBlocks(n *html.Node, blocks *[]Block) {
	if n.Type == html.ElementNode && nodeClass(n) == "ocr_carea" {
		block := Block{Box: parseBBox(nodeTitle(n))}
		collectParagraphs(n, &block)
		if len(block.Paragraphs) > 0 {
			*blocks = append(*blocks, block)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectBlocks(c, blocks)
	}
}

func collectParagraphs(n *html.Node, block *Block) {
	if n.Type == html.ElementNode && nodeClass(n) == "ocr_par" {
		par := Paragraph{Box: parseBBox(nodeTitle(n))}
		collectLines(n, &par)
		if len(par.Lines) > 0 {
			block.Paragraphs = append(block.Paragraphs, par)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectParagraphs(c, block)
	}
}

func collectLines(n *html.Node, par *Paragraph) {
	if n.Type == html.ElementNode && hocrLineClasses[nodeClass(n)] {
		line := Line{Box: parseBBox(nodeTitle(n))}
		collectWords(n, &line)
		if len(line.Words) > 0 {
			par.Lines = append(par.Lines, line)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLines(c, par)
	}
}

func collectWords(n *html.Node, line *Line) {
	if n.Type == html.ElementNode && nodeClass(n) == "ocrx_word" {
		title := nodeTitle(n)
		word := Word{
			Text:       strings.TrimSpace(textContent(n)),
			Confidence: parseWordConfidence(title),
			Box:        parseBBox(title),
		}
		if word.Text != "" {
			line.Words = append(line.Words, word)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectWords(c, line)
	}
}

func nodeClass(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "class" {
			return a.Val
		}
	}
	return ""
}

func nodeTitle(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "title" {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// parseBBox extracts the "bbox x0 y0 x1 y1" property from an hOCR title
// attribute. Missing or malformed boxes yield the zero Box.
func parseBBox(title string) Box {
	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) != 5 || fields[0] != "bbox" {
			continue
		}
		coords := make([]int, 4)
		ok := true
		for i, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				ok = false
				break
			}
			coords[i] = v
		}
		if ok {
			return Box{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}
		}
	}
	return Box{}
}

// parseWordConfidence extracts the "x_wconf" property from an hOCR title
// attribute. Words without a confidence report zero, which the
// reconstruction filter then discards.
func parseWordConfidence(title string) float64 {
	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) == 2 && fields[0] == "x_wconf" {
			if v, err := strconv.ParseFloat(fields[1], 64); err == nil {
				return v
			}
		}
	}
	return 0
}
