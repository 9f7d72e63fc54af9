package reader

import (
	"errors"
	"strings"
	"testing"
)

func TestFromBytes_RejectsGarbage(t *testing.T) {
	_, err := FromBytes([]byte("this is not a pdf"))
	if err == nil {
		t.Fatal("expected error for non-PDF bytes")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("expected *LoadError, got %T (%v)", err, err)
	}
}

func TestFromBytes_RejectsEmptyInput(t *testing.T) {
	_, err := FromBytes(nil)
	if err == nil {
		t.Fatal("expected error for empty input")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("expected *LoadError, got %T (%v)", err, err)
	}
}

func TestFromBytes_RejectsTruncatedHeader(t *testing.T) {
	// A valid header with nothing behind it must fail cleanly, not panic.
	_, err := FromBytes([]byte("%PDF-1.7\n"))
	if err == nil {
		t.Fatal("expected error for truncated document")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("expected *LoadError, got %T (%v)", err, err)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("testdata/does-not-exist.pdf")
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("expected *LoadError, got %T (%v)", err, err)
	}
}

func TestLoadError_Message(t *testing.T) {
	inner := errors.New("bad xref")
	err := &LoadError{Err: inner}

	if !strings.Contains(err.Error(), "bad xref") {
		t.Errorf("expected wrapped message, got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to expose the inner error")
	}
}

func TestRenderError_Message(t *testing.T) {
	inner := errors.New("mupdf failure")
	err := &RenderError{Page: 3, Err: inner}

	if !strings.Contains(err.Error(), "page 3") {
		t.Errorf("expected page number in message, got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to expose the inner error")
	}
}
