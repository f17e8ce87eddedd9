package llm

import (
	"fmt"
	"strings"
)

// BuildSystemPrompt frames the extraction task. Kept short: the JSON schema
// carries the structural constraints.
func BuildSystemPrompt(req ExtractRequest) string {
	var b strings.Builder
	b.WriteString("You extract structured fields from invoice documents.\n")
	b.WriteString("Return a single JSON object matching the provided schema. ")
	b.WriteString("Use null for anything the document does not state. ")
	b.WriteString("Dates are YYYY-MM-DD. Amounts are plain decimals without currency symbols.\n")
	if req.DefaultCurrency != "" {
		fmt.Fprintf(&b, "Assume %s when the currency is not printed on the document.\n", req.DefaultCurrency)
	}
	b.WriteString("If the payment status is unclear, report exactly what the document says; do not guess.")
	return b.String()
}

// BuildUserPrompt wraps the document text with filename context. The
// filename often carries the invoice number or vendor when scanning quality
// is poor.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	if req.FilenameHint != "" {
		fmt.Fprintf(&b, "Filename: %s\n\n", req.FilenameHint)
	}
	b.WriteString("Document text:\n")
	b.WriteString(req.DocumentText)
	return b.String()
}
