package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pagetext/pagetext/layout"
	"github.com/pagetext/pagetext/reader"
)

var pagesCmd = &cobra.Command{
	Use:   "pages <file.pdf>",
	Short: "Show per-page text layer statistics",
	Long: `Opens a PDF and reports, for every page, how many glyph runs the text
layer carries and how many characters the reading-order reconstruction
produces. Useful for deciding whether a document will need OCR.`,
	Args: cobra.ExactArgs(1),
	RunE: runPages,
}

func runPages(cmd *cobra.Command, args []string) error {
	doc, err := reader.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %q: %w", args[0], err)
	}
	defer doc.Close()

	extractor := layout.NewExtractor()

	fmt.Printf("%-6s %8s %8s\n", "page", "runs", "chars")
	for i := 1; i <= doc.PageCount(); i++ {
		runs, err := doc.GlyphRuns(i)
		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
		width, _, err := doc.Viewport(i, 1.0)
		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
		text := extractor.PageText(runs, width)
		fmt.Printf("%-6d %8d %8d\n", i, len(runs), len(strings.TrimSpace(text)))
	}
	return nil
}
