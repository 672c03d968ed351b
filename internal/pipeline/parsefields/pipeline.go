package parsefields

import (
	"log/slog"

	"github.com/adityo-p/threeway-matcher/internal/entity"
	"github.com/adityo-p/threeway-matcher/internal/parser"
)

// Pipeline turns a document's extracted text into candidate fields.
type Pipeline struct {
	Parser *parser.Parser
	Log    *slog.Logger
}

func NewPipeline(p *parser.Parser, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{Parser: p, Log: log}
}

// Run parses the document text. An empty field set is a valid, common
// result; no error path exists here.
func (p *Pipeline) Run(doc *entity.Document) []entity.Field {
	fields := p.Parser.Parse(doc.Text, doc.Role)
	p.Log.Info("parsefields.ok",
		"role", doc.Role,
		"text_bytes", len(doc.Text),
		"fields", len(fields),
	)
	return fields
}
