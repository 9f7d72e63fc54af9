package preprocess

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func makeGray(width, height int, value uint8) *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, width, height))
	for i := range gray.Pix {
		gray.Pix[i] = value
	}
	return gray
}

func TestGrayscale_LuminanceWeights(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(2, 0, color.NRGBA{B: 255, A: 255})

	gray := Grayscale(src)

	// 0.299, 0.587, 0.114 of full scale, rounded to nearest.
	wants := []uint8{76, 150, 29}
	for x, want := range wants {
		if got := gray.GrayAt(x, 0).Y; got != want {
			t.Errorf("pixel %d: expected luminance %d, got %d", x, want, got)
		}
	}
}

func TestGrayscale_BoundsNormalizedToOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 50, 60))

	gray := Grayscale(src)

	if gray.Bounds() != image.Rect(0, 0, 40, 40) {
		t.Errorf("expected origin-based 40x40 bounds, got %v", gray.Bounds())
	}
}

func TestStretchContrast_RemapsToFullRange(t *testing.T) {
	// 50 pixels at 100, 50 at 150: the 2nd and 98th percentiles land on the
	// population's own extremes, which must map to 0 and 255.
	gray := image.NewGray(image.Rect(0, 0, 100, 1))
	for x := 0; x < 100; x++ {
		if x < 50 {
			gray.Pix[x] = 100
		} else {
			gray.Pix[x] = 150
		}
	}

	StretchContrast(gray, 0.02, 0.98)

	if got := gray.Pix[0]; got != 0 {
		t.Errorf("expected dark pixels stretched to 0, got %d", got)
	}
	if got := gray.Pix[99]; got != 255 {
		t.Errorf("expected bright pixels stretched to 255, got %d", got)
	}
}

func TestStretchContrast_NarrowRamp(t *testing.T) {
	// A 4x4 ramp spanning 100..115: the percentile bounds land on the ramp's
	// own extremes, and each step widens to 255/15.
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range gray.Pix {
		gray.Pix[i] = uint8(100 + i)
	}

	StretchContrast(gray, 0.02, 0.98)

	want := []uint8{0, 17, 34, 51, 68, 85, 102, 119, 136, 153, 170, 187, 204, 221, 238, 255}
	for i, v := range gray.Pix {
		if v != want[i] {
			t.Fatalf("pixel %d: expected %d, got %d", i, want[i], v)
		}
	}
}

func TestStretchContrast_FlatImage(t *testing.T) {
	// A single-valued image has zero spread; the clamp keeps the remap
	// finite instead of dividing by zero.
	gray := makeGray(10, 10, 200)

	StretchContrast(gray, 0.02, 0.98)

	for i, v := range gray.Pix {
		if v != 0 {
			t.Fatalf("pixel %d: expected 0 for flat input, got %d", i, v)
		}
	}
}

func TestApplyGamma(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 1))
	gray.Pix[0] = 0
	gray.Pix[1] = 128
	gray.Pix[2] = 255

	ApplyGamma(gray, 0.85)

	if gray.Pix[0] != 0 || gray.Pix[2] != 255 {
		t.Errorf("expected endpoints preserved, got %d and %d", gray.Pix[0], gray.Pix[2])
	}
	// Gamma below 1 lifts midtones: 255 * (128/255)^0.85 rounds to 142.
	if gray.Pix[1] != 142 {
		t.Errorf("expected midtone lifted to 142, got %d", gray.Pix[1])
	}
}

func TestForOCR_Deterministic(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			v := uint8(x*16 + y)
			src.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}

	first := ForOCR(src)
	second := ForOCR(src)

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("expected identical output for identical input")
	}
}
