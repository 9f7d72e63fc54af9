package pagetext

// Phase identifies the pipeline stage a progress event belongs to.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseExtractingText
	PhaseInitializingOCR
	PhaseRecognizing
	PhaseNormalizing
	PhaseDone
)

// String returns a stable lower-case name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseExtractingText:
		return "extracting-text"
	case PhaseInitializingOCR:
		return "initializing-ocr"
	case PhaseRecognizing:
		return "recognizing"
	case PhaseNormalizing:
		return "normalizing"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// ProgressEvent is a transient notification emitted while a document is
// processed. Any number may be emitted per document, including zero; all of
// them strictly precede the returned Outcome. Page is 0 for events not tied
// to a specific page.
type ProgressEvent struct {
	Phase      Phase
	Progress   int // 0–100 within the current phase
	Page       int
	TotalPages int
}

// ProgressFunc consumes progress events. It is invoked synchronously on the
// extraction goroutine and must not block; the pipeline does not wait on it.
type ProgressFunc func(ProgressEvent)
