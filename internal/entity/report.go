package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/adityo-p/threeway-matcher/constants"
)

// MatchResult is the verdict for one field kind, or for one supplemental
// labeled-date rule.
type MatchResult struct {
	Kind        constants.FieldKind               `json:"kind"`
	Rule        string                            `json:"rule,omitempty"` // set for supplemental rules
	Verdict     constants.Verdict                 `json:"verdict"`
	Values      map[constants.DocumentRole]string `json:"values"` // representative value per role, "" when absent
	Missing     []constants.DocumentRole          `json:"missing,omitempty"`
	Agreed      string                            `json:"agreed,omitempty"` // value all three documents agree on
	Explanation string                            `json:"explanation"`
}

// MatchReport is the ordered outcome of a three-way reconciliation.
// ID and GeneratedAt are stamped by the processor, not by the engine,
// so that reconciliation itself stays a pure function of its inputs.
type MatchReport struct {
	ID           uuid.UUID     `json:"id"`
	Results      []MatchResult `json:"results"`
	FullyMatched bool          `json:"fully_matched"`
	GeneratedAt  time.Time     `json:"generated_at"`
}
