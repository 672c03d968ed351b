package textextract

import (
	"context"
	"log/slog"

	"github.com/adityo-p/threeway-matcher/internal/entity"
	"github.com/adityo-p/threeway-matcher/internal/extract"
)

// Pipeline runs the extraction collaborator over a document and attaches the
// resulting text. Extraction failure is not fatal: the document simply ends
// up with no text and contributes an empty field set downstream.
type Pipeline struct {
	TextExtractor extract.TextExtractor
	Log           *slog.Logger
}

func NewPipeline(tx extract.TextExtractor, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{TextExtractor: tx, Log: log}
}

// Run extracts text for one document and records the extraction metadata.
func (p *Pipeline) Run(ctx context.Context, doc *entity.Document) error {
	res, err := p.TextExtractor.Extract(ctx, doc.Content, doc.Format)
	doc.Extraction = entity.ExtractionMeta{
		Method:     res.Method,
		Pages:      res.Pages,
		Language:   res.Language,
		Confidence: res.Confidence,
		Duration:   res.Duration,
		Warnings:   res.Warnings,
		OCRUsed:    res.OCRUsed(),
	}
	if err != nil {
		p.Log.Warn("textextract.failed",
			"role", doc.Role, "format", doc.Format, "error", err)
		return err
	}
	doc.Text = res.Text
	p.Log.Info("textextract.ok",
		"role", doc.Role,
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"confidence", res.Confidence,
	)
	return nil
}
