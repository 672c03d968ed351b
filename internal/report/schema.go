package report

import "github.com/adityo-p/threeway-matcher/constants"

// BuildReportJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the marshaled MatchReport. The presentation layer
// consumes this wire shape; we validate against it locally before handing
// a report over.
func BuildReportJSONSchema() map[string]any {
	kinds := []string{
		string(constants.FieldDate),
		string(constants.FieldAmount),
		string(constants.FieldText),
	}
	verdicts := []string{
		string(constants.VerdictMatch),
		string(constants.VerdictMismatch),
		string(constants.VerdictMissing),
	}
	roles := []string{
		string(constants.RoleContract),
		string(constants.RoleCertificate),
		string(constants.RoleInvoice),
	}

	result := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"kind":    map[string]any{"type": "string", "enum": kinds},
			"rule":    map[string]any{"type": "string", "minLength": 1},
			"verdict": map[string]any{"type": "string", "enum": verdicts},
			"values": map[string]any{
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
			"missing": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "enum": roles},
			},
			"agreed":      map[string]any{"type": "string"},
			"explanation": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"kind", "verdict", "values", "explanation"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"id":            map[string]any{"type": "string"},
			"results":       map[string]any{"type": "array", "items": result},
			"fully_matched": map[string]any{"type": "boolean"},
			"generated_at":  map[string]any{"type": "string"},
		},
		"required": []string{"results", "fully_matched"},
	}
}
