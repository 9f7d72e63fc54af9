package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "pagetext",
	Short: "Extract plain text from PDF documents",
	Long: `Pagetext extracts normalized plain text from PDF documents.

Text-bearing pages are reconstructed in reading order from the page's
glyph runs, including two-column layouts. Documents without a usable
text layer (scans, image-only exports) fall back to OCR when the binary
is built with the ocr tag and Tesseract is installed.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.pagetext/config.yaml)")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: could not determine home directory:", err)
			return
		}
		viper.AddConfigPath(filepath.Join(home, ".pagetext"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("PAGETEXT")
	viper.AutomaticEnv()

	// The config file is optional; flags and env vars cover everything.
	_ = viper.ReadInConfig()
}
