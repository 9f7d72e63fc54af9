package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pagetext/pagetext"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Extract normalized text from a PDF",
	Long: `Extracts the plain text of a PDF and writes it to stdout.

The standard glyph-run path runs first; if the document has no usable
text layer the whole document is re-processed through OCR (requires a
binary built with the ocr tag and a local Tesseract installation).`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringSlice("langs", []string{"eng", "spa"}, "OCR language codes, in priority order")
	extractCmd.Flags().Int("min-text", pagetext.DefaultMinTextLength, "trimmed text length below which OCR kicks in")
	extractCmd.Flags().Float64("scale", pagetext.DefaultOCRScale, "rasterization scale for OCR")
	extractCmd.Flags().Bool("json", false, "emit a JSON object with text, page count and method")
	extractCmd.Flags().Bool("progress", false, "report progress on stderr")

	_ = viper.BindPFlag("langs", extractCmd.Flags().Lookup("langs"))
	_ = viper.BindPFlag("min-text", extractCmd.Flags().Lookup("min-text"))
	_ = viper.BindPFlag("scale", extractCmd.Flags().Lookup("scale"))
}

func runExtract(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	showProgress, _ := cmd.Flags().GetBool("progress")

	pipeline := pagetext.Open(args[0]).
		Languages(viper.GetStringSlice("langs")...).
		MinTextLength(viper.GetInt("min-text")).
		OCRScale(viper.GetFloat64("scale"))

	if showProgress {
		pipeline = pipeline.OnProgress(func(ev pagetext.ProgressEvent) {
			if ev.Page > 0 {
				fmt.Fprintf(os.Stderr, "%s: page %d/%d (%d%%)\n", ev.Phase, ev.Page, ev.TotalPages, ev.Progress)
				return
			}
			fmt.Fprintf(os.Stderr, "%s\n", ev.Phase)
		})
	}

	outcome, err := pipeline.Extract(context.Background())
	if err != nil {
		return fmt.Errorf("extract %q: %w", args[0], err)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Text     string `json:"text"`
			NumPages int    `json:"num_pages"`
			Method   string `json:"method"`
			Words    int    `json:"words"`
		}{outcome.Text, outcome.NumPages, string(outcome.Method), outcome.WordCount()})
	}

	fmt.Println(outcome.Text)
	return nil
}
