package constants

// FieldKind categorizes an extracted value for cross-document comparison.
type FieldKind string

const (
	FieldDate   FieldKind = "DATE"
	FieldAmount FieldKind = "AMOUNT"
	FieldText   FieldKind = "TEXT"
)

// Verdict is the outcome of reconciling one field kind across the three
// documents.
type Verdict string

const (
	VerdictMatch    Verdict = "MATCH"
	VerdictMismatch Verdict = "MISMATCH"
	VerdictMissing  Verdict = "MISSING"
)
