package constants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaymentStatusIsTotal(t *testing.T) {
	inputs := []string{
		"paid", "unpaid", "partial", "overdue",
		"PAID", " Unpaid ", "Partial",
		"pending", "cancelled", "canceled", "refunded", "processing",
		"failed", "draft", "unknown", "na", "n/a", "none", "null",
		"", "   ", "💸", "completely made up status", strings.Repeat("x", 500),
	}
	canonical := map[PaymentStatus]struct{}{
		PaymentStatusPaid:    {},
		PaymentStatusUnpaid:  {},
		PaymentStatusPartial: {},
		PaymentStatusOverdue: {},
	}
	for _, in := range inputs {
		got := NormalizePaymentStatus(in)
		_, ok := canonical[got]
		assert.True(t, ok, "NormalizePaymentStatus(%q) = %q is outside the canonical set", in, got)
	}
}

func TestNormalizePaymentStatusCanonicalPassThrough(t *testing.T) {
	assert.Equal(t, PaymentStatusPaid, NormalizePaymentStatus("PAID"))
	assert.Equal(t, PaymentStatusPartial, NormalizePaymentStatus("  partial "))
	assert.Equal(t, PaymentStatusOverdue, NormalizePaymentStatus("Overdue"))
}

func TestNormalizePaymentStatusDriftVocabulary(t *testing.T) {
	for raw := range nonCanonicalStatuses {
		assert.Equal(t, DefaultPaymentStatus, NormalizePaymentStatus(raw), "raw=%q", raw)
	}
	assert.Equal(t, DefaultPaymentStatus, NormalizePaymentStatus("brand-new-upstream-value"))
}

func TestPaymentStatusStringsMatchesEnum(t *testing.T) {
	// The DB column validator is built from PaymentStatusStrings; this pins
	// the two sides of the contract together.
	want := []string{"paid", "unpaid", "partial", "overdue"}
	assert.Equal(t, want, PaymentStatusStrings())
	for _, s := range want {
		assert.True(t, IsCanonicalPaymentStatus(s))
		assert.Equal(t, PaymentStatus(s), NormalizePaymentStatus(s))
	}
	assert.False(t, IsCanonicalPaymentStatus("pending"))
}
