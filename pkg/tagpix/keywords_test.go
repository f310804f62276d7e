package tagpix

import (
	"testing"

	"github.com/barasher/go-exiftool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedKeywords(t *testing.T) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		t.Skipf("exiftool unavailable: %v", err)
	}
	defer et.Close()

	p := writeImage(t, t.TempDir(), "k.jpg", 8, 8)
	require.NoError(t, EmbedKeywords(et, p, []string{"smile", "standing"}))

	fms := et.ExtractMetadata(p)
	require.NoError(t, fms[0].Err)
	got, err := fms[0].GetStrings("Keywords")
	require.NoError(t, err)
	assert.Equal(t, []string{"smile", "standing"}, got)
}
