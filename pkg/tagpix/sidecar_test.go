package tagpix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidecarPath(t *testing.T) {
	assert.Equal(t, "/p/img.txt", SidecarPath("/p/img.png"))
	assert.Equal(t, "/p/img.v2.txt", SidecarPath("/p/img.v2.JPEG"))
	assert.Equal(t, "rel/x.txt", SidecarPath("rel/x.jpg"))
}

func TestParseTags(t *testing.T) {
	assert.Nil(t, ParseTags(""))
	assert.Equal(t, []string{"a", "b", "c"}, ParseTags("a, b, c"))
	assert.Equal(t, []string{"a,b", "c "}, ParseTags("a,b, c "))
	assert.Equal(t, "a, b", FormatTags([]string{"a", "b"}))
}

func TestReadTags(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "x.png")

	tags, err := ReadTags(img)
	require.NoError(t, err)
	assert.Empty(t, tags)

	writeFile(t, dir, "x.txt", "a, b, a, c")
	tags, err = ReadTags(img)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tags)
}

func TestWriteTagsVerbatim(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "x.jpg")

	p, err := WriteTags(img, "a,, b ,b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "x.txt"), p)

	bs, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "a,, b ,b", string(bs))
}

func TestWriteTagsMissingDir(t *testing.T) {
	_, err := WriteTags(filepath.Join(t.TempDir(), "nope", "x.jpg"), "a")
	assert.Error(t, err)
}
