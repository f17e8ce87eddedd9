package doctext

import (
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// MaxVisionEdge is the longest image edge sent to the vision model; larger
// uploads only add latency and token cost.
const MaxVisionEdge = 2048

// PrepareImage normalizes an uploaded invoice image for the vision path:
// EXIF orientation is applied on decode, oversized images are scaled down,
// and the result is cached as PNG under cacheDir keyed by the document's
// content hash. Returns the cached file path.
func PrepareImage(srcPath, cacheDir, contentHashHex string) (string, error) {
	img, err := imaging.Open(srcPath, imaging.AutoOrientation(true))
	if err != nil {
		return "", err
	}

	img = shrinkToFit(img, MaxVisionEdge)

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(cacheDir, contentHashHex+".png")
	if err := imaging.Save(img, dst); err != nil {
		return "", err
	}
	return dst, nil
}

func shrinkToFit(img image.Image, maxEdge int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return img
	}
	if w >= h {
		return imaging.Resize(img, maxEdge, 0, imaging.Lanczos)
	}
	return imaging.Resize(img, 0, maxEdge, imaging.Lanczos)
}
