package intelligence

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient wraps one Gemini generative model.
type GeminiClient struct {
	model *genai.GenerativeModel
}

// NewGeminiClient creates a client for the Gemini 1.5 Flash model.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	model := client.GenerativeModel("models/gemini-1.5-flash")
	return &GeminiClient{model: model}, nil
}

// GenerateWithImage sends a text prompt plus an inline image and returns the
// concatenated text of the first candidate.
func (g *GeminiClient) GenerateWithImage(ctx context.Context, prompt, mimeSubtype string, image []byte) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt), genai.ImageData(mimeSubtype, image))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
