package ocr

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityo-p/threeway-matcher/constants"
	"github.com/adityo-p/threeway-matcher/internal/common"
)

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const docxSample = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Tanggal BA: 15/03/2024</w:t></w:r></w:p>
    <w:p><w:r><w:t>Nilai </w:t></w:r><w:r><w:t>Rp 10.000.000</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtractDOCX(t *testing.T) {
	t.Run("paragraphs become lines, runs concatenate", func(t *testing.T) {
		text, err := extractDOCX(buildDOCX(t, docxSample))
		require.NoError(t, err)
		norm := Normalize(text)
		assert.Equal(t, "Tanggal BA: 15/03/2024\nNilai Rp 10.000.000", norm)
	})

	t.Run("missing document part", func(t *testing.T) {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		require.NoError(t, zw.Close())
		_, err := extractDOCX(buf.Bytes())
		assert.ErrorContains(t, err, "word/document.xml")
	})

	t.Run("not a zip container", func(t *testing.T) {
		_, err := extractDOCX([]byte("plain text, not a docx"))
		assert.Error(t, err)
	})
}

func TestExtractorDOCXFormat(t *testing.T) {
	e := NewExtractor(Config{}, nil)

	t.Run("happy path", func(t *testing.T) {
		res, err := e.Extract(context.Background(), buildDOCX(t, docxSample), constants.DOCX)
		require.NoError(t, err)
		assert.Equal(t, "docx", res.Method)
		assert.Contains(t, res.Text, "Tanggal BA: 15/03/2024")
	})

	t.Run("corrupt container degrades to no-text", func(t *testing.T) {
		_, err := e.Extract(context.Background(), []byte("garbage"), constants.DOCX)
		assert.ErrorIs(t, err, common.ErrNoText)
	})
}
