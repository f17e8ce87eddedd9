package llm

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to OpenAI as a structured output constraint and
// also use it locally to validate. payment_status is deliberately left an
// unconstrained string: the vocabulary upstream models emit drifts, and the
// normalization table owns mapping it to the canonical set. Per-field
// *_confidence keys are admitted via patternProperties; their [0,1] bounds
// are checked by the field validator, not here.
func BuildInvoiceJSONSchema() map[string]any {
	lineItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description": map[string]any{"type": "string"},
			"quantity":    numberOrDecimalProp(),
			"rate":        numberOrDecimalProp(),
			"amount":      numberOrDecimalProp(),
		},
		"required": []string{"description"},
	}

	props := map[string]any{
		"invoice_number":   map[string]any{"type": "string", "minLength": 1, "maxLength": 100},
		"vendor_name":      map[string]any{"type": "string"},
		"total_amount":     numberOrDecimalProp(),
		"invoice_date":     dateProp(),
		"due_date":         dateProp(),
		"payment_status":   map[string]any{"type": "string"},
		"currency_code":    map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
		"line_items":       map[string]any{"type": "array", "items": lineItem},
		"confidence_score": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"patternProperties": map[string]any{
			`^[a-z][a-z0-9_]*_confidence$`: map[string]any{"type": "number"},
		},
		"required": []string{"invoice_number", "vendor_name", "total_amount"},
	}
}

func numberOrDecimalProp() map[string]any {
	return map[string]any{
		"anyOf": []any{
			map[string]any{"type": "number"},
			map[string]any{"type": "string", "pattern": `^-?[\d,]+(\.\d{1,2})?$`},
		},
	}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
}
