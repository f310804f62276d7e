package tagpix

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// MaxSuggestions caps the number of tags returned by Suggest.
var MaxSuggestions = 5

// Generator generates content from a model. *genai.Models satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var suggestPrompt = "generate 1-5 comma-separated one-word tags describing this image. " +
	"Tags should be lower-case, present-tense and singular, the kind of tags someone " +
	"would use to organize a collection of pictures. Use bw for black and white images. " +
	"Do not combine multiple words. Reply with the tags only."

// Suggest asks model for tags describing the image at path. The image is
// sent as a JPEG preview no larger than max pixels on its longer side.
func Suggest(ctx context.Context, gen Generator, model string, path string, max int) ([]string, error) {
	img, err := Preview(path, max)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}

	var buf bytes.Buffer
	if err := EncodePreview(&buf, img); err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(buf.Bytes(), "image/jpeg"),
			genai.NewPartFromText(suggestPrompt),
		}, genai.RoleUser),
	}

	resp, err := gen.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	return parseSuggestions(resp.Text()), nil
}

// parseSuggestions turns a comma-separated model reply into tags.
func parseSuggestions(reply string) []string {
	tags := []string{}
	for _, t := range strings.Split(reply, ",") {
		t = strings.ReplaceAll(strings.TrimSpace(t), " ", "")
		if t == "" {
			continue
		}
		tags = append(tags, t)
	}
	tags = uniq(tags)
	if len(tags) > MaxSuggestions {
		tags = tags[0:MaxSuggestions]
	}
	return tags
}
