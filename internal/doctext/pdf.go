package doctext

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/trulyinvoice/trulyinvoice/constants"
)

// PDFResult is the text-stage output for a PDF document.
type PDFResult struct {
	Text  string
	Pages int
	// Confidence is a crude signal for the parse stage: digitally-born PDFs
	// yield dense text, scans yield next to nothing.
	Confidence float32
}

// PDFText extracts native text from a PDF, page by page, capped at
// constants.MaxPDFPages. Scanned PDFs with no text layer come back with an
// empty string and zero confidence; the parse stage falls back to vision.
func PDFText(r io.Reader) (*PDFResult, error) {
	buf := new(bytes.Buffer)
	size, err := buf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), size)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	pages := reader.NumPage()
	limit := pages
	if limit > constants.MaxPDFPages {
		limit = constants.MaxPDFPages
	}

	var b strings.Builder
	for i := 1; i <= limit; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			// A single broken page should not sink the document.
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
				b.WriteString(" ")
			}
			b.WriteString("\n")
		}
		b.WriteString("\f")
	}

	text := strings.TrimSpace(b.String())
	return &PDFResult{
		Text:       text,
		Pages:      pages,
		Confidence: textConfidence(text, limit),
	}, nil
}

// PDFTextFile is PDFText over a file path.
func PDFTextFile(path string) (*PDFResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return PDFText(f)
}

// textConfidence estimates how usable the extracted text is. Anything under
// a few hundred characters per page is likely a scan.
func textConfidence(text string, pages int) float32 {
	if pages <= 0 || text == "" {
		return 0
	}
	perPage := float32(len(text)) / float32(pages)
	c := perPage / 800
	if c > 0.95 {
		c = 0.95
	}
	return c
}
