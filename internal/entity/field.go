package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/adityo-p/threeway-matcher/constants"
)

// Field is one candidate value recognized in a document's text. Several
// fields of the same kind may coexist per document; ambiguity is preserved
// for the reconciliation stage to resolve.
type Field struct {
	Kind     constants.FieldKind `json:"kind"`
	Value    string              `json:"value"`           // canonical form
	Raw      string              `json:"raw"`             // matched substring
	Position int                 `json:"position"`        // byte offset in source text
	Label    string              `json:"label,omitempty"` // set when matched via a labeled pattern

	Date   time.Time       `json:"-"` // valid when Kind == FieldDate
	Amount decimal.Decimal `json:"-"` // valid when Kind == FieldAmount
}

func NewDateField(d time.Time, raw string, pos int) Field {
	return Field{
		Kind:     constants.FieldDate,
		Value:    d.Format("2006-01-02"),
		Raw:      raw,
		Position: pos,
		Date:     d,
	}
}

func NewAmountField(a decimal.Decimal, raw string, pos int) Field {
	return Field{
		Kind:     constants.FieldAmount,
		Value:    a.String(),
		Raw:      raw,
		Position: pos,
		Amount:   a,
	}
}

func NewTextField(value, raw string, pos int) Field {
	return Field{
		Kind:     constants.FieldText,
		Value:    value,
		Raw:      raw,
		Position: pos,
	}
}

// WithLabel tags the field with the pattern label that produced it.
func (f Field) WithLabel(label string) Field {
	f.Label = label
	return f
}
