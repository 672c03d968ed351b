package ocr

import (
	"regexp"
	"strings"
)

var (
	reDateish   = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{4}\b|\b\d{4}-\d{2}-\d{2}\b`)
	reCurrency  = regexp.MustCompile(`\brp\b|\bidr\b|[$€£]`)
	reAmountish = regexp.MustCompile(`\b\d{1,3}([.,]\d{3})+\b`)
)

func hasDatePattern(s string) bool     { return reDateish.MatchString(s) }
func hasCurrencyPattern(s string) bool { return reCurrency.MatchString(s) }
func hasAmountPattern(s string) bool   { return reAmountish.MatchString(s) }

// heuristicConfidence scores decoded text by the artifacts we expect in
// contract and invoice documents (date-ish, currency-ish, amount-ish).
func heuristicConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasDatePattern(txtL) {
		score += 0.2
	}
	if hasCurrencyPattern(txtL) {
		score += 0.15
	}
	if hasAmountPattern(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1 // enough content
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
