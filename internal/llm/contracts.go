package llm

import "context"

// ExtractRequest carries everything the field-extraction call needs. The
// model, prompt and cost characteristics live behind FieldExtractor; the
// rest of the system only sees the raw mapping that comes back.
type ExtractRequest struct {
	DocumentText    string
	FilenameHint    string
	DefaultCurrency string

	// PrepConfidence is the confidence of the text-extraction stage; below
	// the vision threshold the original image is attached to the request.
	PrepConfidence   float32
	FilePath         string
	ContentHashHex   string
	ArtifactCacheDir string
}

// FieldExtractor is the interface the pipeline depends on. The returned
// mapping is raw and untrusted: it goes through fields.Validate before
// anything is persisted. The second value is the raw model JSON for audit
// storage on the extract job.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (map[string]any, []byte, error)
}
