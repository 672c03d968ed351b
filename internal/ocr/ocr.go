package ocr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/adityo-p/threeway-matcher/constants"
	"github.com/adityo-p/threeway-matcher/internal/common"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "ind+eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir         string
	EnableTSVConfidence bool

	// Timeout bounds one extraction end to end, external binaries included.
	// Zero means no bound beyond the caller's context.
	Timeout time.Duration

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

type ExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // constants.PDF | constants.DOCX | constants.IMAGE | constants.TXT
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr" | "docx" | "plain"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "ind+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on the declared document format.
func (e *Extractor) Extract(ctx context.Context, content []byte, format string) (ExtractionResult, error) {
	start := time.Now()
	e.logger.Debug("starting text extraction", "format", format, "bytes", len(content))

	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	switch format {
	case constants.PDF:
		path, cleanup, err := writeTemp(content, "twm-*.pdf")
		if err != nil {
			return ExtractionResult{SourceType: constants.PDF}, err
		}
		defer cleanup()
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err

	case constants.IMAGE:
		path, cleanup, err := writeTemp(content, "twm-*.png")
		if err != nil {
			return ExtractionResult{SourceType: constants.IMAGE}, err
		}
		defer cleanup()
		res, err := e.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, err

	case constants.DOCX:
		text, err := extractDOCX(content)
		res := ExtractionResult{
			SourceType: constants.DOCX,
			Method:     "docx",
			Pages:      1,
			Duration:   time.Since(start),
		}
		if err != nil {
			e.logger.Error("docx extraction failed", "error", err)
			res.Warnings = append(res.Warnings, err.Error())
			return res, common.WrapError(common.ErrNoText, "docx")
		}
		res.Text = Normalize(text)
		if res.Text == "" {
			return res, common.ErrNoText
		}
		return res, nil

	case constants.TXT:
		res := ExtractionResult{
			SourceType: constants.TXT,
			Method:     "plain",
			Pages:      1,
			Text:       Normalize(string(bytes.ToValidUTF8(content, nil))),
			Duration:   time.Since(start),
		}
		if res.Text == "" {
			return res, common.ErrNoText
		}
		return res, nil

	default:
		e.logger.Error("unsupported document format", "format", format)
		return ExtractionResult{}, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, format)
	}
}

// extractPDF tries the embedded text layer first and falls back to
// rasterize-and-OCR when the layer is empty (scanned documents).
func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	text, pages, warns, err := e.pdfToText(ctx, path)
	if err == nil && strings.TrimSpace(text) != "" {
		return ExtractionResult{
			Text:       Normalize(text),
			Pages:      pages,
			SourceType: constants.PDF,
			Method:     "pdf-text",
			Warnings:   warns,
			Confidence: 1.0,
		}, nil
	}
	if err != nil {
		e.logger.Warn("pdftotext failed, trying OCR fallback", "error", err)
	}

	ocrText, ocrPages, ocrWarns, ocrErr := e.pdfToOCR(ctx, path)
	warns = append(warns, ocrWarns...)
	res := ExtractionResult{
		Pages:      ocrPages,
		SourceType: constants.PDF,
		Method:     "pdf-ocr",
		Language:   e.cfg.TesseractLang,
		Warnings:   warns,
	}
	if ocrErr != nil {
		e.logger.Error("pdf ocr fallback failed", "error", ocrErr)
		return res, common.WrapError(common.ErrNoText, "pdf-ocr")
	}
	res.Text = Normalize(ocrText)
	if res.Text == "" {
		return res, common.ErrNoText
	}
	res.Confidence = heuristicConfidence(res.Text)
	return res, nil
}

// writeTemp persists document bytes so the external binaries can read them.
func writeTemp(content []byte, pattern string) (string, func(), error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
