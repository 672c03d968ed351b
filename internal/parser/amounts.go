package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adityo-p/threeway-matcher/internal/entity"
)

var (
	// Either an explicit Rp/IDR prefix followed by any number form, or a
	// bare number that carries at least one thousands group. Bare small
	// integers are deliberately not amount candidates: they would drown the
	// candidate sets in date components and list numbering.
	reAmountScan = regexp.MustCompile(
		`(?i)\b(?:rp\.?|idr)\s*\d+(?:[.,]\d{3})*(?:[.,]\d{1,2})?|\b\d{1,3}(?:[.,]\d{3})+(?:[.,]\d{1,2})?\b`)

	reCurrencyPrefix = regexp.MustCompile(`(?i)rp\.?|idr`)
	reNonAmount      = regexp.MustCompile(`[^0-9.,]`)
)

// scanAmounts recognizes currency-formatted numbers with optional Rp/IDR
// prefix and thousands/decimal separators.
func (p *Parser) scanAmounts(text string) []entity.Field {
	var out []entity.Field
	for _, m := range reAmountScan.FindAllStringIndex(text, -1) {
		raw := text[m[0]:m[1]]
		if a, ok := NormalizeAmount(raw); ok {
			out = append(out, entity.NewAmountField(a, raw, m[0]))
		}
	}
	return out
}

// NormalizeAmount resolves the thousands/decimal separator ambiguity with a
// fixed, documented rule: when both separator types appear, the one occurring
// last is the decimal separator; a single separator type occurring exactly
// once and followed by exactly two digits at the end is a decimal separator;
// anything else is a thousands grouping. Currency markers and spaces are
// stripped. Returns false when no digits remain.
func NormalizeAmount(s string) (decimal.Decimal, bool) {
	s = reCurrencyPrefix.ReplaceAllString(s, "")
	s = reNonAmount.ReplaceAllString(s, "")
	if !strings.ContainsAny(s, "0123456789") {
		return decimal.Decimal{}, false
	}

	dotLast := strings.LastIndexByte(s, '.')
	comLast := strings.LastIndexByte(s, ',')
	decIdx := -1
	switch {
	case dotLast >= 0 && comLast >= 0:
		if dotLast > comLast {
			decIdx = dotLast
		} else {
			decIdx = comLast
		}
	case dotLast >= 0:
		if strings.Count(s, ".") == 1 && len(s)-dotLast-1 == 2 {
			decIdx = dotLast
		}
	case comLast >= 0:
		if strings.Count(s, ",") == 1 && len(s)-comLast-1 == 2 {
			decIdx = comLast
		}
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case i == decIdx:
			b.WriteByte('.')
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
