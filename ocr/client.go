//go:build ocr

package ocr

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps one Tesseract instance for the duration of a single
// document's recognition pass. Acquire once per document, call Close on
// every exit path; the instance is stateful and must not be shared across
// concurrent documents.
type Client struct {
	client   *gosseract.Client
	progress func(percent int)
}

// NewClient initializes a recognition client for the given languages
// (Tesseract language codes, e.g. "eng", "spa"). The client is configured
// for fully automatic page segmentation with inter-word spacing preserved.
func NewClient(languages ...string) (*Client, error) {
	client := gosseract.NewClient()

	if len(languages) > 0 {
		if err := client.SetLanguage(languages...); err != nil {
			client.Close()
			return nil, &RecognitionError{Err: fmt.Errorf("set languages %s: %w", strings.Join(languages, "+"), err)}
		}
	}
	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		client.Close()
		return nil, &RecognitionError{Err: fmt.Errorf("set segmentation mode: %w", err)}
	}
	if err := client.SetVariable(gosseract.SettableVariable("preserve_interword_spaces"), "1"); err != nil {
		client.Close()
		return nil, &RecognitionError{Err: fmt.Errorf("preserve spacing: %w", err)}
	}

	return &Client{client: client}, nil
}

// OnProgress registers a callback invoked with coarse recognition progress
// (0–100) for each image. The callback runs on the calling goroutine and
// must not block.
func (c *Client) OnProgress(fn func(percent int)) {
	c.progress = fn
}

// Recognize submits one preprocessed page image and returns the structured
// result. The image buffer may be released by the caller as soon as
// Recognize returns.
func (c *Client) Recognize(ctx context.Context, img image.Image) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, &RecognitionError{Err: ctx.Err()}
	default:
	}

	c.report(0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Result{}, &RecognitionError{Err: fmt.Errorf("encode image: %w", err)}
	}
	if err := c.client.SetImageFromBytes(buf.Bytes()); err != nil {
		return Result{}, &RecognitionError{Err: fmt.Errorf("set image: %w", err)}
	}

	plain, err := c.client.Text()
	if err != nil {
		return Result{}, &RecognitionError{Err: fmt.Errorf("recognize text: %w", err)}
	}

	hocr, err := c.client.HOCRText()
	if err != nil {
		// The flat text survived; fall back to it rather than failing the page.
		c.report(100)
		return Result{PlainText: strings.TrimSpace(plain)}, nil
	}

	blocks, err := ParseHOCR(hocr)
	if err != nil {
		c.report(100)
		return Result{PlainText: strings.TrimSpace(plain)}, nil
	}

	c.report(100)
	return Result{Blocks: blocks, PlainText: strings.TrimSpace(plain)}, nil
}

// Close releases the Tesseract instance. It is safe to call multiple times.
func (c *Client) Close() error {
	if c.client != nil {
		err := c.client.Close()
		c.client = nil
		return err
	}
	return nil
}

func (c *Client) report(percent int) {
	if c.progress != nil {
		c.progress(percent)
	}
}
