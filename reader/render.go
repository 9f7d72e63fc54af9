package reader

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// RenderError reports that a specific page could not be rasterized.
type RenderError struct {
	Page int
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render page %d: %v", e.Page, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// RenderPage rasterizes a page (1-indexed) at the given scale, where scale
// 1.0 corresponds to 72 DPI. The result is composited onto a fully opaque
// white background: recognition accuracy depends on contrast against a known
// background, and transparent regions would bias it.
//
// The returned buffer is owned by the caller and should be dropped as soon
// as recognition of the page completes, so that peak memory stays at roughly
// one high-resolution page regardless of document length.
func (d *Document) RenderPage(pageNum int, scale float64) (image.Image, error) {
	if pageNum < 1 || pageNum > d.pageCount {
		return nil, &RenderError{Page: pageNum, Err: fmt.Errorf("page out of range [1, %d]", d.pageCount)}
	}
	if scale <= 0 {
		return nil, &RenderError{Page: pageNum, Err: fmt.Errorf("invalid scale %v", scale)}
	}

	rendered, err := d.fitzDoc.ImageDPI(pageNum-1, 72*scale)
	if err != nil {
		return nil, &RenderError{Page: pageNum, Err: err}
	}

	out := image.NewRGBA(rendered.Bounds())
	xdraw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	xdraw.Draw(out, out.Bounds(), rendered, rendered.Bounds().Min, xdraw.Over)
	return out, nil
}

// RenderPreview rasterizes a page at a low scale and resizes it to the given
// pixel width, preserving aspect ratio. Intended for thumbnails and preview
// panes rather than recognition.
func (d *Document) RenderPreview(pageNum, width int) (image.Image, error) {
	if width <= 0 {
		return nil, &RenderError{Page: pageNum, Err: fmt.Errorf("invalid preview width %d", width)}
	}

	img, err := d.RenderPage(pageNum, 1.5)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, width, 0, imaging.Lanczos), nil
}
