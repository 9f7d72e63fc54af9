// Package preprocess prepares rasterized pages for recognition. Each pass
// (grayscale conversion, percentile contrast stretch, gamma correction) is a
// pure function of the input pixels: deterministic, with no external
// dependency, so recognition results are reproducible.
package preprocess

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/histogram"
	"github.com/disintegration/imaging"
)

// Config holds the preprocessing parameters.
type Config struct {
	// LowPercentile and HighPercentile bound the luminance range that the
	// contrast stretch remaps to [0, 255]. Defaults: 0.02 and 0.98.
	LowPercentile  float64
	HighPercentile float64

	// Gamma is the exponent applied after the stretch. Values below 1 lift
	// midtones, improving stroke contrast for small glyphs. Default: 0.85.
	Gamma float64
}

// DefaultConfig returns the default preprocessing parameters.
func DefaultConfig() Config {
	return Config{
		LowPercentile:  0.02,
		HighPercentile: 0.98,
		Gamma:          0.85,
	}
}

// ForOCR runs the full preprocessing chain with default parameters.
func ForOCR(img image.Image) *image.Gray {
	return ForOCRWithConfig(img, DefaultConfig())
}

// ForOCRWithConfig converts a rendered page to grayscale, stretches its
// contrast, and applies gamma correction. The stretch and gamma passes
// mutate the grayscale buffer in place; the buffer is exclusively owned by
// the current page's recognition step, so in-place mutation is safe.
func ForOCRWithConfig(img image.Image, cfg Config) *image.Gray {
	gray := Grayscale(img)
	StretchContrast(gray, cfg.LowPercentile, cfg.HighPercentile)
	ApplyGamma(gray, cfg.Gamma)
	return gray
}

// Grayscale converts an image to 8-bit grayscale using the standard
// luminance weights 0.299R + 0.587G + 0.114B, rounded to nearest.
func Grayscale(img image.Image) *image.Gray {
	src := imaging.Clone(img)
	bounds := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			px := src.NRGBAAt(x, y)
			lum := 0.299*float64(px.R) + 0.587*float64(px.G) + 0.114*float64(px.B)
			gray.Pix[y*gray.Stride+x] = uint8(math.Round(lum))
		}
	}
	return gray
}

// StretchContrast remaps the luminance range found between the given
// percentiles of the pixel population onto the full [0, 255] range, in
// place. Scanned and rendered pages rarely use the full range; widening it
// sharpens the glyph/background separation the recognizer depends on.
func StretchContrast(gray *image.Gray, lowPercentile, highPercentile float64) {
	cumulative := histogram.NewRGBAHistogram(gray).R.Cumulative()
	total := cumulative.Bins[len(cumulative.Bins)-1]
	if total == 0 {
		return
	}

	lowVal := percentileValue(cumulative.Bins, float64(total)*lowPercentile)
	highVal := percentileValue(cumulative.Bins, float64(total)*highPercentile)

	spread := highVal - lowVal
	if spread < 1 {
		spread = 1
	}

	var lut [256]uint8
	for v := 0; v < 256; v++ {
		remapped := float64(v-lowVal) / float64(spread) * 255
		lut[v] = clampToByte(remapped)
	}
	applyLUT(gray, &lut)
}

// ApplyGamma applies v' = 255 * (v/255)^gamma to every pixel, in place.
func ApplyGamma(gray *image.Gray, gamma float64) {
	var lut [256]uint8
	for v := 0; v < 256; v++ {
		lut[v] = clampToByte(255 * math.Pow(float64(v)/255, gamma))
	}
	applyLUT(gray, &lut)
}

// percentileValue returns the first luminance whose cumulative count reaches
// target.
func percentileValue(cumulativeBins []int, target float64) int {
	for v, count := range cumulativeBins {
		if float64(count) >= target {
			return v
		}
	}
	return len(cumulativeBins) - 1
}

func applyLUT(gray *image.Gray, lut *[256]uint8) {
	for i, v := range gray.Pix {
		gray.Pix[i] = lut[v]
	}
}

func clampToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
