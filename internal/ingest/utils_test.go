package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt("pdf"))
	assert.True(t, AllowedExt(".PDF"))
	assert.True(t, AllowedExt("jpeg"))
	assert.True(t, AllowedExt(".png"))

	assert.False(t, AllowedExt(""))
	assert.False(t, AllowedExt("docx"))
	assert.False(t, AllowedExt(".heic"))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/a/b/.DS_Store"))
	assert.True(t, IsHidden(".git"))
	assert.False(t, IsHidden("/a/b/invoice.pdf"))
	assert.False(t, IsHidden("scan.jpg"))
}
