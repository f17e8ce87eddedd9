package doctext

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareImageShrinksAndCaches(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "big.png")
	big := imaging.New(4000, 1000, color.White)
	require.NoError(t, imaging.Save(big, src))

	cacheDir := filepath.Join(dir, "cache")
	dst, err := PrepareImage(src, cacheDir, "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cacheDir, "deadbeef.png"), dst)

	out, err := imaging.Open(dst)
	require.NoError(t, err)
	assert.Equal(t, MaxVisionEdge, out.Bounds().Dx())
	assert.Equal(t, MaxVisionEdge/4, out.Bounds().Dy())
}

func TestPrepareImageKeepsSmallImages(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "small.png")
	require.NoError(t, imaging.Save(imaging.New(640, 480, color.White), src))

	dst, err := PrepareImage(src, dir, "cafe")
	require.NoError(t, err)

	out, err := imaging.Open(dst)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 640, 480), out.Bounds())
}

func TestShrinkToFitPortrait(t *testing.T) {
	img := imaging.New(1000, 4000, color.White)
	out := shrinkToFit(img, MaxVisionEdge)
	assert.Equal(t, MaxVisionEdge, out.Bounds().Dy())
	assert.Equal(t, MaxVisionEdge/4, out.Bounds().Dx())
}
