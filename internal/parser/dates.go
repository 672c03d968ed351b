package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/adityo-p/threeway-matcher/internal/entity"
)

var (
	reDateNumeric = regexp.MustCompile(`\b(\d{1,2})([/-])(\d{1,2})([/-])(\d{4})\b`)
	reDateISO     = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	reDateLong    = regexp.MustCompile(`(?i)\b(\d{1,2})\s+([\pL]+)\s+(\d{4})\b`)
)

// scanDates recognizes DD/MM/YYYY, DD-MM-YYYY, ISO YYYY-MM-DD and
// "DD Month YYYY" with Indonesian or English month names. Invalid calendar
// dates (day 32, month 13) are discarded, not reported as errors.
func (p *Parser) scanDates(text string) []entity.Field {
	var out []entity.Field

	for _, m := range reDateNumeric.FindAllStringSubmatchIndex(text, -1) {
		// require the same separator on both sides
		if group(text, m, 2) != group(text, m, 4) {
			continue
		}
		day := atoi(group(text, m, 1))
		mon := atoi(group(text, m, 3))
		year := atoi(group(text, m, 5))
		if t, ok := calendarDate(year, time.Month(mon), day); ok {
			out = append(out, entity.NewDateField(t, text[m[0]:m[1]], m[0]))
		}
	}

	for _, m := range reDateISO.FindAllStringSubmatchIndex(text, -1) {
		year := atoi(group(text, m, 1))
		mon := atoi(group(text, m, 2))
		day := atoi(group(text, m, 3))
		if t, ok := calendarDate(year, time.Month(mon), day); ok {
			out = append(out, entity.NewDateField(t, text[m[0]:m[1]], m[0]))
		}
	}

	for _, m := range reDateLong.FindAllStringSubmatchIndex(text, -1) {
		mon, ok := p.months[strings.ToLower(group(text, m, 2))]
		if !ok {
			continue
		}
		day := atoi(group(text, m, 1))
		year := atoi(group(text, m, 3))
		if t, ok := calendarDate(year, mon, day); ok {
			out = append(out, entity.NewDateField(t, text[m[0]:m[1]], m[0]))
		}
	}

	return out
}

// firstDate returns the earliest recognizable date in s, if any.
func (p *Parser) firstDate(s string) (entity.Field, bool) {
	fields := p.scanDates(s)
	if len(fields) == 0 {
		return entity.Field{}, false
	}
	best := fields[0]
	for _, f := range fields[1:] {
		if f.Position < best.Position {
			best = f
		}
	}
	return best, true
}

// calendarDate builds a UTC midnight date and rejects values that do not
// round-trip (e.g. day 32 or month 13, which time.Date would normalize).
func calendarDate(year int, month time.Month, day int) (time.Time, bool) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func group(s string, m []int, i int) string {
	if m[2*i] < 0 {
		return ""
	}
	return s[m[2*i]:m[2*i+1]]
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
