package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "episode-12_final.mp3", SanitizeFilename("episode-12_final.mp3"))
	assert.Equal(t, "cool_filename.txt.wow", SanitizeFilename("cool filename.txt.wow"))
	assert.Equal(t, "newlines_aretotallylegal", SanitizeFilename("newlines\naretotallylegal"))
	assert.Equal(t, "unnamed", SanitizeFilename(""))
}

func TestAssetKey(t *testing.T) {
	assert.Equal(t, "abc-123/show.mp3", AssetKey("abc-123", "show.mp3"))
}
