package connect

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/ujval10/EV-Recharge/internal/config"
	"google.golang.org/api/option"
)

const geminiModelName = "gemini-2.0-flash"

// GeminiModel adapts the Gemini SDK to the advisor's SuggestionModel
// interface. The response schema is enforced server-side so a reply
// that drifts from the two-field shape fails before parsing.
type GeminiModel struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func InitGemini(ctx context.Context, cfg *config.Config) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %v", err)
	}

	model := client.GenerativeModel(geminiModelName)
	model.GenerationConfig.ResponseMIMEType = "application/json"
	model.GenerationConfig.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"suggestedChargingTimes": {
				Type:        genai.TypeString,
				Description: "The suggested optimal charging time. If no suitable slot is found, say so.",
			},
			"reasoning": {
				Type:        genai.TypeString,
				Description: "Why the suggested time fits the schedule and duration, and why other times were ruled out.",
			},
		},
		Required: []string{"suggestedChargingTimes", "reasoning"},
	}

	return &GeminiModel{client: client, model: model}, nil
}

func (g *GeminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content failed: %v", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("model returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("model returned no text parts")
	}

	return sb.String(), nil
}

func (g *GeminiModel) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
