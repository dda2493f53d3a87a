package synthesis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"strings"

	"postify/internal/domain/distribution"
	"postify/internal/pkg/config"
	"postify/internal/pkg/errs"

	"google.golang.org/genai"
)

const copyPromptTemplate = `You are a social media content creator for festive greeting posts.
Given the occasion below, produce a JSON object with exactly two string fields:
  "prompt":  a rich, detailed prompt for an image generation model to create a
             celebratory square poster for the occasion (no text in the image),
  "caption": a short, warm greeting caption suitable for WhatsApp, with fitting emojis.
Return only the JSON object.

Occasion: %s`

// GeminiClient talks to the Gemini API for both structured post copy and
// image synthesis.
type GeminiClient struct {
	client     *genai.Client
	textModel  string
	imageModel string
	cfg        config.GeminiConfig
}

func NewGeminiClient(cfg config.GeminiConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create gemini client")
	}
	return &GeminiClient{
		client:     client,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		cfg:        cfg,
	}, nil
}

// ComposePost asks the text model for an image prompt and a caption for the
// occasion. Descriptions, when present, are appended to steer the copy.
func (g *GeminiClient) ComposePost(ctx context.Context, occasion string, description *string) (distribution.PostCopy, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	subject := occasion
	if description != nil && *description != "" {
		subject = fmt.Sprintf("%s (%s)", occasion, *description)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.textModel,
		genai.Text(fmt.Sprintf(copyPromptTemplate, subject)),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return distribution.PostCopy{}, errs.Wrap(err, "failed to generate post copy")
	}

	raw := stripCodeFences(resp.Text())
	var pc distribution.PostCopy
	if err := json.Unmarshal([]byte(raw), &pc); err != nil {
		return distribution.PostCopy{}, errs.Wrap(err, "failed to parse post copy response")
	}
	if pc.Prompt == "" || pc.Caption == "" {
		return distribution.PostCopy{}, errs.New("post copy response missing prompt or caption")
	}
	return pc, nil
}

// Synthesize renders the base image from the prompt using the image model.
func (g *GeminiClient) Synthesize(ctx context.Context, prompt string) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.imageModel,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseModalities: []string{"IMAGE", "TEXT"}},
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate image")
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				img, _, err := image.Decode(bytes.NewReader(part.InlineData.Data))
				if err != nil {
					return nil, errs.Wrap(err, "failed to decode generated image")
				}
				return img, nil
			}
		}
	}
	return nil, errs.New("image model returned no image data")
}

// stripCodeFences tolerates models that wrap JSON in markdown fences despite
// the response MIME type.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
