package constants

import "strings"

// FileFormat is the coarse document format stored on extract_job rows.
type FileFormat string

const (
	PDF   FileFormat = "PDF"
	IMAGE FileFormat = "IMAGE"
)

// FileFormats holds the allowed file formats for the format field in ExtractJob.
var FileFormats = []string{string(PDF), string(IMAGE)}

// AllowedExtensions holds the default allowed file extensions for invoice uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// MaxUploadBytes caps the size of a single uploaded document.
const MaxUploadBytes = 20 << 20

// MaxPDFPages caps how many pages of a PDF are considered during extraction.
const MaxPDFPages = 25

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to its coarse FileFormat.
func MapExtToFormat(ext string) FileFormat {
	if NormalizeExt(ext) == "pdf" {
		return PDF
	}
	return IMAGE
}
