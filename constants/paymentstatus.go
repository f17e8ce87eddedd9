package constants

import "strings"

// PaymentStatus is the canonical payment status for rows in invoices.
type PaymentStatus string

// Stable values (store these exact strings in DB).
const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// DefaultPaymentStatus is the single "unresolved" member every unknown raw
// status collapses to.
const DefaultPaymentStatus = PaymentStatusUnpaid

var allPaymentStatuses = []PaymentStatus{
	PaymentStatusPaid,
	PaymentStatusUnpaid,
	PaymentStatusPartial,
	PaymentStatusOverdue,
}

// nonCanonicalStatuses records the raw vocabulary observed from extraction
// output over time. Everything here, and anything not listed at all, maps to
// DefaultPaymentStatus. Extend this map, never re-derive the set elsewhere:
// the invoices payment_status column validator is built from this same
// package, so the two cannot disagree.
var nonCanonicalStatuses = map[string]PaymentStatus{
	"pending":    DefaultPaymentStatus,
	"cancelled":  DefaultPaymentStatus,
	"canceled":   DefaultPaymentStatus,
	"refunded":   DefaultPaymentStatus,
	"processing": DefaultPaymentStatus,
	"failed":     DefaultPaymentStatus,
	"draft":      DefaultPaymentStatus,
	"unknown":    DefaultPaymentStatus,
	"na":         DefaultPaymentStatus,
	"n/a":        DefaultPaymentStatus,
	"none":       DefaultPaymentStatus,
	"null":       DefaultPaymentStatus,
}

// PaymentStatusStrings returns the canonical set as plain strings, in a
// stable order. The Ent schema uses this for the column validator.
func PaymentStatusStrings() []string {
	result := make([]string, len(allPaymentStatuses))
	for i, s := range allPaymentStatuses {
		result[i] = string(s)
	}
	return result
}

// NormalizePaymentStatus maps any raw status string to a canonical
// PaymentStatus. It is total: it never fails and never returns a value
// outside the canonical set. Canonical values pass through case-folded;
// everything else falls back to DefaultPaymentStatus.
func NormalizePaymentStatus(raw string) PaymentStatus {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return DefaultPaymentStatus
	}
	for _, s := range allPaymentStatuses {
		if normalized == string(s) {
			return s
		}
	}
	if s, ok := nonCanonicalStatuses[normalized]; ok {
		return s
	}
	return DefaultPaymentStatus
}

// IsCanonicalPaymentStatus reports whether s is already a member of the
// canonical set, without normalizing.
func IsCanonicalPaymentStatus(s string) bool {
	for _, c := range allPaymentStatuses {
		if s == string(c) {
			return true
		}
	}
	return false
}
