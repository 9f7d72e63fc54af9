//go:build !ocr

package ocr

import (
	"context"
	"errors"
	"image"
)

// ErrOCRNotEnabled is returned when recognition is requested but OCR support
// was not compiled in. Rebuild with -tags ocr to enable it (requires
// Tesseract to be installed).
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is the stub recognition client used when the "ocr" build tag is not
// set. All operations report ErrOCRNotEnabled.
type Client struct{}

// NewClient returns an error indicating OCR support is not enabled.
func NewClient(languages ...string) (*Client, error) {
	return nil, &RecognitionError{Err: ErrOCRNotEnabled}
}

// OnProgress is a no-op for the stub client.
func (c *Client) OnProgress(fn func(percent int)) {}

// Recognize returns an error indicating OCR support is not enabled.
func (c *Client) Recognize(ctx context.Context, img image.Image) (Result, error) {
	return Result{}, &RecognitionError{Err: ErrOCRNotEnabled}
}

// Close is a no-op for the stub client. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}
