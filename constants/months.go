package constants

import "time"

// MonthNames maps lowercase Indonesian and English month names (plus common
// abbreviations) to calendar months, for "DD Month YYYY" date recognition.
var MonthNames = map[string]time.Month{
	"januari":   time.January,
	"februari":  time.February,
	"maret":     time.March,
	"april":     time.April,
	"mei":       time.May,
	"juni":      time.June,
	"juli":      time.July,
	"agustus":   time.August,
	"september": time.September,
	"oktober":   time.October,
	"november":  time.November,
	"desember":  time.December,

	"january":  time.January,
	"february": time.February,
	"march":    time.March,
	"may":      time.May,
	"june":     time.June,
	"july":     time.July,
	"august":   time.August,
	"october":  time.October,
	"december": time.December,

	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"jun": time.June,
	"jul": time.July,
	"agu": time.August,
	"aug": time.August,
	"sep": time.September,
	"okt": time.October,
	"oct": time.October,
	"nov": time.November,
	"des": time.December,
	"dec": time.December,
}
