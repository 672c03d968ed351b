package extract

import (
	"context"
	"time"
)

// TextExtractor is the pluggable collaborator: document bytes -> raw text.
// Implementations may delegate to OCR when the document has no embedded
// text layer. The backend is swappable without touching the parsing or
// reconciliation core.
type TextExtractor interface {
	Extract(ctx context.Context, content []byte, format string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.DOCX | constants.IMAGE | constants.TXT
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr" | "docx" | "plain"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

// OCRUsed reports whether the text came from optical recognition rather
// than an embedded text layer.
func (r TextExtractionResult) OCRUsed() bool {
	return r.Method == "pdf-ocr" || r.Method == "image-ocr"
}
