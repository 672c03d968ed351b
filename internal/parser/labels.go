package parser

import (
	"regexp"
	"strings"

	"github.com/adityo-p/threeway-matcher/constants"
	"github.com/adityo-p/threeway-matcher/internal/entity"
)

type labeledPattern struct {
	label string
	kind  constants.FieldKind
	re    *regexp.Regexp
}

// Extraction rules per role, mirroring the labels that appear in Indonesian
// contract, berita acara and invoice documents. First match per label wins.
var rolePatterns = map[constants.DocumentRole][]labeledPattern{
	constants.RoleContract: {
		{"nomor_kontrak", constants.FieldText,
			regexp.MustCompile(`(?i)\b(?:Nomor|No\.?)\s+Kontrak\s*[:\s]\s*([A-Za-z0-9][A-Za-z0-9\-/.]*)`)},
		{"tanggal_mulai", constants.FieldDate,
			regexp.MustCompile(`(?i)\b(?:Tanggal\s+)?Mulai\b\s*[:\s]\s*([0-9][\pL\d ,./-]*)`)},
		{"tanggal_selesai", constants.FieldDate,
			regexp.MustCompile(`(?i)\b(?:Tanggal\s+Selesai|Berakhir)\b\s*[:\s]\s*([0-9][\pL\d ,./-]*)`)},
		{"nilai_kontrak", constants.FieldAmount,
			regexp.MustCompile(`(?i)\bNilai(?:\s+Pekerjaan)?\b\s*[:\s]\s*(?:Rp\.?|IDR)?\s*([\d.,]+)`)},
	},
	constants.RoleCertificate: {
		{"tanggal_ba", constants.FieldDate,
			regexp.MustCompile(`(?i)\bTanggal(?:\s+(?:BA|Berita\s+Acara))?\b\s*[:\s]\s*([0-9][\pL\d ,./-]*)`)},
	},
	constants.RoleInvoice: {
		{"tanggal_invoice", constants.FieldDate,
			regexp.MustCompile(`(?i)\bTanggal(?:\s+(?:Invoice|Faktur))?\b\s*[:\s]\s*([0-9][\pL\d ,./-]*)`)},
		{"dpp", constants.FieldAmount,
			regexp.MustCompile(`(?i)\b(?:DPP|Dasar\s+Pengenaan\s+Pajak)\b\s*[:\s]\s*(?:Rp\.?|IDR)?\s*([\d.,]+)`)},
		{"ppn", constants.FieldAmount,
			regexp.MustCompile(`(?i)\bP\.?P\.?N\b\.?\s*[:\s]\s*(?:Rp\.?|IDR)?\s*([\d.,]+)`)},
		{"total", constants.FieldAmount,
			regexp.MustCompile(`(?i)\b(?:Total(?:\s+Invoice)?|Jumlah)\b\s*[:\s]\s*(?:Rp\.?|IDR)?\s*([\d.,]+)`)},
	},
}

// scanLabeled applies the role's labeled patterns. A label whose captured
// value cannot be normalized is skipped silently; absence is common and is
// the reconciliation engine's concern, not the parser's.
func (p *Parser) scanLabeled(text string, role constants.DocumentRole) []entity.Field {
	var out []entity.Field
	for _, lp := range rolePatterns[role] {
		m := lp.re.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}
		raw := text[m[2]:m[3]]
		pos := m[2]

		switch lp.kind {
		case constants.FieldDate:
			f, ok := p.firstDate(raw)
			if !ok {
				continue
			}
			f.Position = pos + f.Position
			out = append(out, f.WithLabel(lp.label))
		case constants.FieldAmount:
			a, ok := NormalizeAmount(raw)
			if !ok {
				continue
			}
			out = append(out, entity.NewAmountField(a, strings.TrimSpace(raw), pos).WithLabel(lp.label))
		default:
			v := strings.TrimSpace(raw)
			if v == "" {
				continue
			}
			out = append(out, entity.NewTextField(v, v, pos).WithLabel(lp.label))
		}
	}
	return out
}
