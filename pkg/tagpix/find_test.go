package tagpix

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsImage(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.png", true},
		{"a.PNG", true},
		{"/x/y/b.jpg", true},
		{"c.JPeG", true},
		{"d.gif", false},
		{"e.txt", false},
		{"png", false},
		{"f.png.bak", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImage(tt.path))
		})
	}
}

func TestFindFiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "b.png", 4, 4)
	writeImage(t, dir, "a.jpg", 4, 4)
	writeFile(t, dir, "c.txt", "x")

	got, err := Find(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.jpg"), filepath.Join(dir, "b.png")}, got)
}

func TestFindIsNotRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.png"), 0o755))
	writeImage(t, sub, "deep.png", 2, 2)
	writeImage(t, dir, ".hidden.png", 2, 2)
	top := writeImage(t, dir, "TOP.JPEG", 2, 2)

	got, err := Find(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{top}, got)
}

func TestFindMissingDir(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
