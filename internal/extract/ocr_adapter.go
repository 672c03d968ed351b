package extract

import (
	"context"

	"github.com/adityo-p/threeway-matcher/internal/ocr"
)

// OCRAdapter exposes the default command-line extractor as a TextExtractor.
type OCRAdapter struct {
	e *ocr.Extractor
}

func NewOCRAdapter(e *ocr.Extractor) *OCRAdapter {
	return &OCRAdapter{e: e}
}

func (a *OCRAdapter) Extract(ctx context.Context, content []byte, format string) (TextExtractionResult, error) {
	r, err := a.e.Extract(ctx, content, format)
	return TextExtractionResult{
		Text:       r.Text,
		Pages:      r.Pages,
		SourceType: r.SourceType,
		Method:     r.Method,
		Language:   r.Language,
		Duration:   r.Duration,
		Warnings:   r.Warnings,
		Confidence: r.Confidence,
	}, err
}
