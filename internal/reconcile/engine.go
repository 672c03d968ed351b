// Package reconcile implements the pure three-way comparison between the
// field sets extracted from a contract, a completion certificate and an
// invoice. Given identical inputs it always produces a structurally
// identical report: no hidden state, no I/O.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adityo-p/threeway-matcher/constants"
	"github.com/adityo-p/threeway-matcher/internal/entity"
)

// Config holds comparison knobs.
type Config struct {
	// AmountTolerance treats two amounts within this distance as equal.
	// Zero means exact comparison. Dates are always compared exactly.
	AmountTolerance decimal.Decimal
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Reconcile compares the three field sets and produces an ordered report.
// ID and GeneratedAt are left zero; the caller stamps them.
func (e *Engine) Reconcile(contract, certificate, invoice []entity.Field) entity.MatchReport {
	sets := map[constants.DocumentRole][]entity.Field{
		constants.RoleContract:    contract,
		constants.RoleCertificate: certificate,
		constants.RoleInvoice:     invoice,
	}

	results := []entity.MatchResult{
		e.compareKind(constants.FieldDate, sets),
		e.compareKind(constants.FieldAmount, sets),
	}
	results = append(results, e.labeledRules(sets)...)

	fully := true
	for _, r := range results {
		if r.Verdict != constants.VerdictMatch {
			fully = false
		}
	}
	return entity.MatchReport{Results: results, FullyMatched: fully}
}

// compareKind checks whether the candidate sets for one field kind intersect
// across all three documents.
func (e *Engine) compareKind(kind constants.FieldKind, sets map[constants.DocumentRole][]entity.Field) entity.MatchResult {
	cands := make(map[constants.DocumentRole][]entity.Field, len(constants.Roles))
	values := make(map[constants.DocumentRole]string, len(constants.Roles))
	var missing []constants.DocumentRole

	for _, role := range constants.Roles {
		fs := filterKind(sets[role], kind)
		cands[role] = fs
		if len(fs) == 0 {
			values[role] = ""
			missing = append(missing, role)
		} else {
			// representative value for display: first candidate in
			// extraction order
			values[role] = fs[0].Value
		}
	}

	if len(missing) > 0 {
		return entity.MatchResult{
			Kind:    kind,
			Verdict: constants.VerdictMissing,
			Values:  values,
			Missing: missing,
			Explanation: fmt.Sprintf("no %s found in %s",
				strings.ToLower(string(kind)), joinRoles(missing)),
		}
	}

	// candidates are kept in extraction order, so the first agreement found
	// is deterministic
	for _, f := range cands[constants.RoleContract] {
		if e.containsValue(cands[constants.RoleCertificate], f) && e.containsValue(cands[constants.RoleInvoice], f) {
			agreed := map[constants.DocumentRole]string{
				constants.RoleContract:    f.Value,
				constants.RoleCertificate: f.Value,
				constants.RoleInvoice:     f.Value,
			}
			return entity.MatchResult{
				Kind:    kind,
				Verdict: constants.VerdictMatch,
				Values:  agreed,
				Agreed:  f.Value,
				Explanation: fmt.Sprintf("all three documents agree on %s %s",
					strings.ToLower(string(kind)), f.Value),
			}
		}
	}

	return entity.MatchResult{
		Kind:    kind,
		Verdict: constants.VerdictMismatch,
		Values:  values,
		Explanation: fmt.Sprintf("%s differs: contract=%s certificate=%s invoice=%s",
			strings.ToLower(string(kind)),
			values[constants.RoleContract],
			values[constants.RoleCertificate],
			values[constants.RoleInvoice]),
	}
}

// containsValue reports whether fs holds a field equal to want, using exact
// date equality and tolerance-aware amount equality.
func (e *Engine) containsValue(fs []entity.Field, want entity.Field) bool {
	for _, f := range fs {
		switch want.Kind {
		case constants.FieldDate:
			if f.Date.Equal(want.Date) {
				return true
			}
		case constants.FieldAmount:
			if e.amountsEqual(f.Amount, want.Amount) {
				return true
			}
		default:
			if f.Value == want.Value {
				return true
			}
		}
	}
	return false
}

func (e *Engine) amountsEqual(a, b decimal.Decimal) bool {
	if e.cfg.AmountTolerance.IsZero() {
		return a.Equal(b)
	}
	return a.Sub(b).Abs().LessThanOrEqual(e.cfg.AmountTolerance)
}

func filterKind(fs []entity.Field, kind constants.FieldKind) []entity.Field {
	var out []entity.Field
	for _, f := range fs {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}

func joinRoles(roles []constants.DocumentRole) string {
	parts := make([]string, 0, len(roles))
	for _, r := range roles {
		parts = append(parts, strings.ToLower(string(r)))
	}
	return strings.Join(parts, ", ")
}
