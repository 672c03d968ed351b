// Package parser turns raw document text into candidate fields. Every entry
// point is total: malformed, empty or pattern-free input yields an empty
// field set, never an error.
package parser

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/adityo-p/threeway-matcher/constants"
	"github.com/adityo-p/threeway-matcher/internal/entity"
)

// Config holds behavior knobs for the parser.
type Config struct {
	// ExtraMonthNames supplements the built-in Indonesian/English month
	// table for "DD Month YYYY" recognition.
	ExtraMonthNames map[string]time.Month
}

type Parser struct {
	cfg    Config
	logger *slog.Logger
	months map[string]time.Month
}

func New(cfg Config, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	months := make(map[string]time.Month, len(constants.MonthNames)+len(cfg.ExtraMonthNames))
	for k, v := range constants.MonthNames {
		months[k] = v
	}
	for k, v := range cfg.ExtraMonthNames {
		months[strings.ToLower(k)] = v
	}
	return &Parser{cfg: cfg, logger: logger, months: months}
}

// Parse scans text for date, amount and role-specific labeled fields. Scans
// run independently over the full text; overlapping candidates are
// deduplicated preferring the longest match at a given start position.
func (p *Parser) Parse(text string, role constants.DocumentRole) []entity.Field {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var fields []entity.Field
	fields = append(fields, p.scanDates(text)...)
	fields = append(fields, p.scanAmounts(text)...)
	fields = append(fields, p.scanLabeled(text, role)...)

	fields = dedupe(fields)
	p.logger.Debug("parse complete", "role", role, "fields", len(fields))
	return fields
}

type fieldKey struct {
	pos  int
	kind constants.FieldKind
}

// dedupe keeps, per start position and kind, the longest raw match;
// labeled fields win ties so rule labels survive.
func dedupe(fields []entity.Field) []entity.Field {
	best := make(map[fieldKey]entity.Field, len(fields))
	for _, f := range fields {
		k := fieldKey{pos: f.Position, kind: f.Kind}
		cur, ok := best[k]
		if !ok {
			best[k] = f
			continue
		}
		best[k] = betterOf(cur, f)
	}
	out := make([]entity.Field, 0, len(best))
	for _, f := range best {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

func betterOf(a, b entity.Field) entity.Field {
	if len(b.Raw) != len(a.Raw) {
		if len(b.Raw) > len(a.Raw) {
			return b
		}
		return a
	}
	if a.Label == "" && b.Label != "" {
		return b
	}
	return a
}
