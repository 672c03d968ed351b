package reconcile

import (
	"fmt"

	"github.com/adityo-p/threeway-matcher/constants"
	"github.com/adityo-p/threeway-matcher/internal/entity"
)

// Supplemental rule names.
const (
	RuleCertificateWithinPeriod = "certificate_within_period"
	RuleInvoiceAfterCertificate = "invoice_not_before_certificate"
)

// labeledRules evaluates the workflow checks that depend on labeled dates:
// the certificate must fall inside the contract period, and the invoice
// cannot predate the certificate. A rule is emitted only when every labeled
// date it needs was extracted; partial absence is not a verdict.
func (e *Engine) labeledRules(sets map[constants.DocumentRole][]entity.Field) []entity.MatchResult {
	start := firstLabeled(sets[constants.RoleContract], "tanggal_mulai")
	end := firstLabeled(sets[constants.RoleContract], "tanggal_selesai")
	baDate := firstLabeled(sets[constants.RoleCertificate], "tanggal_ba")
	invDate := firstLabeled(sets[constants.RoleInvoice], "tanggal_invoice")

	var out []entity.MatchResult

	if start != nil && end != nil && baDate != nil {
		inPeriod := !baDate.Date.Before(start.Date) && !baDate.Date.After(end.Date)
		r := entity.MatchResult{
			Kind:    constants.FieldDate,
			Rule:    RuleCertificateWithinPeriod,
			Verdict: constants.VerdictMatch,
			Values: map[constants.DocumentRole]string{
				constants.RoleContract:    start.Value + ".." + end.Value,
				constants.RoleCertificate: baDate.Value,
				constants.RoleInvoice:     "",
			},
			Explanation: fmt.Sprintf("certificate date %s is within contract period %s..%s",
				baDate.Value, start.Value, end.Value),
		}
		if !inPeriod {
			r.Verdict = constants.VerdictMismatch
			r.Explanation = fmt.Sprintf("certificate date %s is outside contract period %s..%s",
				baDate.Value, start.Value, end.Value)
		}
		out = append(out, r)
	}

	if baDate != nil && invDate != nil {
		onOrAfter := !invDate.Date.Before(baDate.Date)
		r := entity.MatchResult{
			Kind:    constants.FieldDate,
			Rule:    RuleInvoiceAfterCertificate,
			Verdict: constants.VerdictMatch,
			Values: map[constants.DocumentRole]string{
				constants.RoleContract:    "",
				constants.RoleCertificate: baDate.Value,
				constants.RoleInvoice:     invDate.Value,
			},
			Explanation: fmt.Sprintf("invoice date %s is on or after certificate date %s",
				invDate.Value, baDate.Value),
		}
		if !onOrAfter {
			r.Verdict = constants.VerdictMismatch
			r.Explanation = fmt.Sprintf("invoice date %s predates certificate date %s",
				invDate.Value, baDate.Value)
		}
		out = append(out, r)
	}

	return out
}

func firstLabeled(fs []entity.Field, label string) *entity.Field {
	for i := range fs {
		if fs[i].Label == label {
			return &fs[i]
		}
	}
	return nil
}
