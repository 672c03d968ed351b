package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityo-p/threeway-matcher/constants"
	"github.com/adityo-p/threeway-matcher/internal/entity"
	"github.com/adityo-p/threeway-matcher/internal/extract"
	"github.com/adityo-p/threeway-matcher/internal/parser"
	parse "github.com/adityo-p/threeway-matcher/internal/pipeline/parsefields"
	"github.com/adityo-p/threeway-matcher/internal/pipeline/textextract"
	"github.com/adityo-p/threeway-matcher/internal/reconcile"
)

// contentExtractor returns the document bytes as the text.
type contentExtractor struct{ err error }

func (c contentExtractor) Extract(_ context.Context, content []byte, _ string) (extract.TextExtractionResult, error) {
	if c.err != nil {
		return extract.TextExtractionResult{}, c.err
	}
	return extract.TextExtractionResult{Text: string(content), Pages: 1, Method: "plain"}, nil
}

func newProcessor(tx extract.TextExtractor) *Processor {
	p := parser.New(parser.Config{}, nil)
	return NewProcessor(nil,
		textextract.NewPipeline(tx, nil),
		parse.NewPipeline(p, nil),
		reconcile.NewEngine(reconcile.Config{}),
	)
}

func threeDocs(text string) (contract, certificate, invoice *entity.Document) {
	contract = entity.NewDocument(constants.RoleContract, "k.txt", constants.TXT, []byte(text))
	certificate = entity.NewDocument(constants.RoleCertificate, "ba.txt", constants.TXT, []byte(text))
	invoice = entity.NewDocument(constants.RoleInvoice, "inv.txt", constants.TXT, []byte(text))
	return
}

func TestProcessorStampsReport(t *testing.T) {
	proc := newProcessor(contentExtractor{})
	contract, certificate, invoice := threeDocs("tertanggal 15/03/2024 senilai Rp 10.000.000")

	rep, err := proc.Match(context.Background(), contract, certificate, invoice)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, rep.ID)
	assert.False(t, rep.GeneratedAt.IsZero())
	assert.True(t, rep.FullyMatched)
	assert.Equal(t, "plain", contract.Extraction.Method)
	assert.False(t, contract.Extraction.OCRUsed)
}

func TestProcessorDegradesOnExtractionFailure(t *testing.T) {
	proc := newProcessor(contentExtractor{err: errors.New("scanner offline")})
	contract, certificate, invoice := threeDocs("irrelevant")

	rep, err := proc.Match(context.Background(), contract, certificate, invoice)
	require.NoError(t, err, "extraction failure must not abort the match")

	assert.False(t, rep.FullyMatched)
	for _, r := range rep.Results {
		assert.Equal(t, constants.VerdictMissing, r.Verdict)
	}
	assert.Empty(t, contract.Text)
}
