package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/trulyinvoice/trulyinvoice/constants"
)

// AllowedExt checks if a file extension is in the allowed set (defaults to pdf/jpg/jpeg/png).
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}

// PDFPageCount opens the PDF just far enough to count pages. A file that
// fails here is corrupt or not actually a PDF and is rejected at ingest
// instead of failing later inside the extraction pipeline.
func PDFPageCount(path string) (int, error) {
	n, err := pdfapi.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("pdf page count: %w", err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("pdf has no pages")
	}
	if n > constants.MaxPDFPages {
		return 0, fmt.Errorf("pdf has %d pages, max is %d", n, constants.MaxPDFPages)
	}
	return n, nil
}
