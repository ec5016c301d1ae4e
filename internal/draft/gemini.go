package draft

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"formalgen/internal/lookup"
)

// GeminiDrafter implements Drafter using Gemini text generation.
type GeminiDrafter struct {
	client        *genai.Client
	model         string
	promptBuilder *PromptBuilder
}

func NewGeminiDrafter(ctx context.Context, apiKey string, modelName string) (*GeminiDrafter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiDrafter{
		client:        client,
		model:         modelName,
		promptBuilder: &PromptBuilder{},
	}, nil
}

// Draft generates the body paragraph for a topic. No retries: a service
// failure is returned as-is for the caller to surface.
func (d *GeminiDrafter) Draft(ctx context.Context, topic string, lang lookup.Language, kind Kind) (string, error) {
	prompt := d.promptBuilder.Build(topic, lang, kind)

	contents := genai.Text(prompt)
	resp, err := d.client.Models.GenerateContent(ctx, d.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate body: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}
