package fields

import (
	"fmt"
	"strings"
)

// Kind classifies a single validation violation.
type Kind string

const (
	// KindMissingRequired covers owner_id, source_document_id and
	// invoice_number absent after cleaning.
	KindMissingRequired Kind = "missing_required"
	// KindInvalidNumeric covers a negative total_amount and any confidence
	// outside [0,1].
	KindInvalidNumeric Kind = "invalid_numeric"
	// KindInvalidDateOrder covers due_date preceding invoice_date.
	KindInvalidDateOrder Kind = "invalid_date_order"
	// KindInvalidLength covers an over-long invoice_number.
	KindInvalidLength Kind = "invalid_length"
)

// Violation is one failed validation rule.
type Violation struct {
	Field   string
	Value   any
	Kind    Kind
	Message string
}

func (v Violation) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s", v.Field, v.Value, v.Message)
}

// ValidationError aggregates every violation found in a single pass, so a
// caller sees the complete list of problems in one round trip instead of
// fixing one and resubmitting.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any violation of the given kind was collected.
func (e *ValidationError) Has(kind Kind) bool {
	for _, v := range e.Violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}
