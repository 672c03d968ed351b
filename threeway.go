// Package threeway matches a contract, a completion certificate (berita
// acara) and an invoice: it extracts text from each document (direct parse
// or OCR fallback), recognizes date and amount candidates, and reconciles
// them into a structured match report for a presentation layer to display.
package threeway

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/adityo-p/threeway-matcher/constants"
	"github.com/adityo-p/threeway-matcher/internal/common"
	"github.com/adityo-p/threeway-matcher/internal/entity"
	"github.com/adityo-p/threeway-matcher/internal/export"
	"github.com/adityo-p/threeway-matcher/internal/extract"
	"github.com/adityo-p/threeway-matcher/internal/ocr"
	"github.com/adityo-p/threeway-matcher/internal/parser"
	"github.com/adityo-p/threeway-matcher/internal/pipeline"
	"github.com/adityo-p/threeway-matcher/internal/pipeline/parsefields"
	"github.com/adityo-p/threeway-matcher/internal/pipeline/textextract"
	"github.com/adityo-p/threeway-matcher/internal/reconcile"
)

// Re-exported core types. The presentation layer builds Documents and
// consumes MatchReports; everything in between stays internal.
type (
	Document             = entity.Document
	Field                = entity.Field
	MatchResult          = entity.MatchResult
	MatchReport          = entity.MatchReport
	TextExtractor        = extract.TextExtractor
	TextExtractionResult = extract.TextExtractionResult
)

// NewDocument builds a document for one role of the match. Format is one of
// constants.FileFormats; use constants.MapExtToFormat to derive it from a
// filename extension.
func NewDocument(role constants.DocumentRole, filename, format string, content []byte) *Document {
	return entity.NewDocument(role, filename, format, content)
}

// Options tunes parsing and reconciliation.
type Options struct {
	// AmountTolerance is a decimal string such as "0.01"; empty means exact
	// amount comparison.
	AmountTolerance string
}

// Matcher is the library façade: extraction, parsing, reconciliation and
// report export behind one handle.
type Matcher struct {
	proc   *pipeline.Processor
	export *export.Service
}

// New builds a Matcher from environment configuration with the default
// command-line extraction collaborator (pdftotext/pdftoppm/tesseract).
func New(logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := common.LoadConfig()
	ex := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		TessdataDir:   cfg.OCR.TessdataDir,
		Timeout:       cfg.OCR.Timeout,
	}, logger)
	opts := Options{AmountTolerance: cfg.Matcher.AmountTolerance}
	return NewWithExtractor(extract.NewOCRAdapter(ex), opts, logger)
}

// NewWithExtractor builds a Matcher around a custom text-extraction
// collaborator. The OCR backend is swappable behind TextExtractor without
// touching the parsing or reconciliation core.
func NewWithExtractor(tx TextExtractor, opts Options, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}

	tol := decimal.Zero
	if opts.AmountTolerance != "" {
		d, err := decimal.NewFromString(opts.AmountTolerance)
		if err != nil {
			logger.Warn("invalid amount tolerance, using exact comparison",
				"value", opts.AmountTolerance, "error", err)
		} else {
			tol = d
		}
	}

	p := parser.New(parser.Config{}, logger)
	eng := reconcile.NewEngine(reconcile.Config{AmountTolerance: tol})
	proc := pipeline.NewProcessor(logger,
		textextract.NewPipeline(tx, logger),
		parsefields.NewPipeline(p, logger),
		eng,
	)
	return &Matcher{proc: proc, export: export.NewService(logger)}
}

// Match reconciles the three documents and returns the structured report.
func (m *Matcher) Match(ctx context.Context, contract, certificate, invoice *Document) (MatchReport, error) {
	return m.proc.Match(ctx, contract, certificate, invoice)
}

// SummaryXLSX renders the report as an XLSX workbook for download.
func (m *Matcher) SummaryXLSX(rep MatchReport) ([]byte, error) {
	return m.export.SummaryXLSX(rep)
}

// SummaryCSV renders the report as CSV for download.
func (m *Matcher) SummaryCSV(rep MatchReport) ([]byte, error) {
	return m.export.SummaryCSV(rep)
}
