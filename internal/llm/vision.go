package llm

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"

	"github.com/trulyinvoice/trulyinvoice/constants"
)

// ImageConfidenceThreshold: below this text-stage confidence the original
// image is attached so the model can read the document itself.
const ImageConfidenceThreshold = 0.50

// MaxVisionMBDefault caps attached image size.
const MaxVisionMBDefault = 8

// ShouldAttachImage decides whether to send the document image alongside the
// extracted text. Prefers the cached normalized PNG produced by the text
// stage when one exists.
func ShouldAttachImage(req ExtractRequest) (attach bool, dataURL, mimeType string) {
	attach = req.FilePath != "" &&
		constants.MapExtToFormat(filepath.Ext(req.FilePath)) == constants.IMAGE &&
		req.PrepConfidence < ImageConfidenceThreshold

	if !attach {
		return false, "", ""
	}

	file := req.FilePath
	if req.ArtifactCacheDir != "" && req.ContentHashHex != "" {
		cached := filepath.Join(req.ArtifactCacheDir, req.ContentHashHex+".png")
		if st, err := os.Stat(cached); err == nil && !st.IsDir() {
			file = cached
		}
	}

	// size gate
	if st, err := os.Stat(file); err == nil {
		if st.Size() > int64(MaxVisionMBDefault)*1024*1024 {
			return false, "", ""
		}
	}

	u, mt, err := readAsDataURL(file)
	if err != nil {
		return false, "", ""
	}
	return true, u, mt
}

func readAsDataURL(path string) (string, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	ext := constants.NormalizeExt(filepath.Ext(path))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		// fallbacks
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		default:
			mt = "application/octet-stream"
		}
	}
	data := base64.StdEncoding.EncodeToString(b)
	return "data:" + mt + ";base64," + data, mt, nil
}
