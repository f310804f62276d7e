package tagpix

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	reply    string
	err      error
	model    string
	contents []*genai.Content
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(f.reply, genai.RoleModel)},
		},
	}, nil
}

func TestSuggest(t *testing.T) {
	p := writeImage(t, t.TempDir(), "beach.jpg", 30, 10)
	gen := &fakeGenerator{reply: "beach, bird,  sunset ,beach, sea, sky, sand"}

	tags, err := Suggest(context.Background(), gen, "test-model", p, 64)
	require.NoError(t, err)
	assert.Equal(t, []string{"beach", "bird", "sunset", "sea", "sky"}, tags)
	assert.Equal(t, "test-model", gen.model)

	require.Len(t, gen.contents, 1)
	parts := gen.contents[0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "image/jpeg", parts[0].InlineData.MIMEType)
	assert.NotEmpty(t, parts[1].Text)
}

func TestSuggestError(t *testing.T) {
	p := writeImage(t, t.TempDir(), "x.png", 4, 4)
	_, err := Suggest(context.Background(), &fakeGenerator{err: errors.New("quota")}, "m", p, 32)
	assert.ErrorContains(t, err, "quota")
}

func TestParseSuggestions(t *testing.T) {
	assert.Equal(t, []string{}, parseSuggestions(""))
	assert.Equal(t, []string{"blackandwhite", "cat"}, parseSuggestions("black and white,cat\n"))
}
