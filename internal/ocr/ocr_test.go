package ocr

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityo-p/threeway-matcher/constants"
	"github.com/adityo-p/threeway-matcher/internal/common"
)

// stubRunner fakes the external binaries. pdftoppm writes fake page images
// next to the prefix it is given, the way the real tool does.
type stubRunner struct {
	pdfText    string
	pageText   string
	renderErr  error
	pageCount  int
	tesseractN int
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	switch name {
	case "pdftotext":
		return []byte(s.pdfText), nil, nil
	case "pdftoppm":
		if s.renderErr != nil {
			return nil, []byte("render failed"), s.renderErr
		}
		prefix := args[len(args)-1]
		for i := 1; i <= s.pageCount; i++ {
			if err := os.WriteFile(fmt.Sprintf("%s-%d.png", prefix, i), []byte("png"), 0o644); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		s.tesseractN++
		return []byte(s.pageText), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %q", name)
}

func newStubExtractor(t *testing.T, s *stubRunner) *Extractor {
	t.Helper()
	e := NewExtractor(Config{MaxPages: 10}, nil)
	e.runner = s
	return e
}

func TestExtractPDFTextLayer(t *testing.T) {
	s := &stubRunner{pdfText: "Nomor Kontrak: K-001\fNilai: Rp 10.000.000"}
	e := newStubExtractor(t, s)

	res, err := e.Extract(context.Background(), []byte("%PDF-1.4"), constants.PDF)
	require.NoError(t, err)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Contains(t, res.Text, "Nomor Kontrak: K-001")
	assert.Equal(t, float32(1.0), res.Confidence)
	assert.Zero(t, s.tesseractN, "no OCR when the text layer is usable")
}

func TestExtractPDFOCRFallback(t *testing.T) {
	s := &stubRunner{
		pdfText:   "  \n ", // empty text layer, i.e. a scanned document
		pageText:  "Tanggal BA: 15/03/2024 Rp 10.000.000",
		pageCount: 2,
	}
	e := newStubExtractor(t, s)

	res, err := e.Extract(context.Background(), []byte("%PDF-1.4"), constants.PDF)
	require.NoError(t, err)
	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, 2, s.tesseractN)
	assert.Contains(t, res.Text, "Tanggal BA: 15/03/2024")
	assert.Equal(t, "ind+eng", res.Language)
	assert.Greater(t, res.Confidence, float32(0))
}

func TestExtractPDFNoTextAnywhere(t *testing.T) {
	t.Run("ocr yields nothing", func(t *testing.T) {
		s := &stubRunner{pdfText: "", pageText: "", pageCount: 1}
		e := newStubExtractor(t, s)
		_, err := e.Extract(context.Background(), []byte("%PDF-1.4"), constants.PDF)
		assert.ErrorIs(t, err, common.ErrNoText)
	})

	t.Run("rasterization fails", func(t *testing.T) {
		s := &stubRunner{pdfText: "", renderErr: fmt.Errorf("boom")}
		e := newStubExtractor(t, s)
		_, err := e.Extract(context.Background(), []byte("%PDF-1.4"), constants.PDF)
		assert.ErrorIs(t, err, common.ErrNoText)
	})
}

func TestExtractPDFMaxPages(t *testing.T) {
	s := &stubRunner{pdfText: "", pageText: "halaman", pageCount: 5}
	e := NewExtractor(Config{MaxPages: 3}, nil)
	e.runner = s

	res, err := e.Extract(context.Background(), []byte("%PDF-1.4"), constants.PDF)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Pages)
	assert.Equal(t, 3, s.tesseractN)
}

func TestExtractImage(t *testing.T) {
	s := &stubRunner{pageText: "Total Invoice: Rp 10.000.000"}
	e := newStubExtractor(t, s)

	res, err := e.Extract(context.Background(), []byte("\x89PNG"), constants.IMAGE)
	require.NoError(t, err)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "Total Invoice: Rp 10.000.000", res.Text)
	assert.Greater(t, res.Confidence, float32(0))
}

func TestExtractTXT(t *testing.T) {
	e := newStubExtractor(t, &stubRunner{})

	t.Run("normalizes line endings", func(t *testing.T) {
		res, err := e.Extract(context.Background(), []byte("tanggal\r\n15/03/2024"), constants.TXT)
		require.NoError(t, err)
		assert.Equal(t, "plain", res.Method)
		assert.Equal(t, "tanggal\n15/03/2024", res.Text)
	})

	t.Run("drops invalid utf-8", func(t *testing.T) {
		res, err := e.Extract(context.Background(), []byte("ok\xff\xfeok"), constants.TXT)
		require.NoError(t, err)
		assert.Equal(t, "okok", res.Text)
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := e.Extract(context.Background(), []byte("   "), constants.TXT)
		assert.ErrorIs(t, err, common.ErrNoText)
	})
}

func TestExtractUnsupportedFormat(t *testing.T) {
	e := newStubExtractor(t, &stubRunner{})
	_, err := e.Extract(context.Background(), []byte("data"), "XLSX")
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}
