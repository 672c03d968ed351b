package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adityo-p/threeway-matcher/constants"
	"github.com/adityo-p/threeway-matcher/internal/common"
	"github.com/adityo-p/threeway-matcher/internal/entity"
	parse "github.com/adityo-p/threeway-matcher/internal/pipeline/parsefields"
	"github.com/adityo-p/threeway-matcher/internal/pipeline/textextract"
	"github.com/adityo-p/threeway-matcher/internal/reconcile"
	"github.com/adityo-p/threeway-matcher/internal/report"
)

// Processor coordinates extraction, parsing and reconciliation for the
// three documents of a match request.
type Processor struct {
	Logger *slog.Logger
	Text   *textextract.Pipeline
	Parse  *parse.Pipeline
	Engine *reconcile.Engine
}

func NewProcessor(logger *slog.Logger, text *textextract.Pipeline, parse *parse.Pipeline, engine *reconcile.Engine) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Text: text, Parse: parse, Engine: engine}
}

// Match runs the full three-way pipeline. Each document is processed
// independently; an extraction failure degrades that document to an empty
// field set and shows up in the report as MISSING verdicts, never as a
// pipeline error.
func (p *Processor) Match(ctx context.Context, contract, certificate, invoice *entity.Document) (entity.MatchReport, error) {
	fields := make(map[constants.DocumentRole][]entity.Field, 3)
	for _, doc := range []*entity.Document{contract, certificate, invoice} {
		if err := p.Text.Run(ctx, doc); err != nil {
			p.Logger.Warn("processor.extract.degraded",
				"role", doc.Role, "error", err)
		}
		fields[doc.Role] = p.Parse.Run(doc)
	}

	rep := p.Engine.Reconcile(
		fields[constants.RoleContract],
		fields[constants.RoleCertificate],
		fields[constants.RoleInvoice],
	)
	rep.ID = uuid.New()
	rep.GeneratedAt = time.Now().UTC()

	// sanity-check the wire shape before handing it to the presentation layer
	b, err := json.Marshal(rep)
	if err != nil {
		return rep, common.WrapError(err, "marshal report")
	}
	if err := report.ValidateReportJSON(b); err != nil {
		return rep, common.WrapError(err, "report validation")
	}

	p.Logger.Info("processor.match.ok",
		"report_id", rep.ID,
		"results", len(rep.Results),
		"fully_matched", rep.FullyMatched,
	)
	return rep, nil
}
