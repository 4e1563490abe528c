package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ujval10/EV-Recharge/internal/models"
)

// SuggestionModel is the single request/response surface of the
// external text-generation service. The concrete Gemini-backed
// implementation lives in internal/connect.
type SuggestionModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const suggestionPromptTemplate = `You are an intelligent AI assistant helping a user find the perfect time to charge their EV. Your goal is to be as helpful as possible.

Analyze the user's schedule, the list of available charging slots, and their required charging duration.

Your task:
1. Find the most optimal time slot that fits the user's schedule and charging duration.
2. If there are multiple good options, recommend the best one that minimizes disruption to their day.
3. Provide a clear, friendly, and concise reasoning for your suggestion. Explain why the chosen time works and briefly mention why other available times might be less ideal (e.g., "10:00 AM is available, but it might clash with your morning meeting.").
4. If no suitable slot is available, clearly state that and explain why (e.g., "No 2-hour slots are available that don't conflict with your scheduled events.").

Respond with a JSON object containing exactly two string fields: "suggestedChargingTimes" (the suggested optimal charging time, or a statement that no suitable slot exists) and "reasoning".

User's Schedule: %s
Available Charging Slots: %s
Required Charging Duration: %s
`

type AdvisorService struct {
	model SuggestionModel
}

func NewAdvisorService(model SuggestionModel) *AdvisorService {
	return &AdvisorService{
		model: model,
	}
}

// Suggest validates the three free-text inputs, renders them into the
// fixed instruction template and parses the model's JSON answer into
// the typed suggestion. The service does no scheduling computation of
// its own; the entire algorithm is delegated to the model. There is no
// retry: any failure surfaces as a single error to the caller.
func (as *AdvisorService) Suggest(ctx context.Context, req *models.SuggestionRequest) (*models.ChargingSuggestion, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid suggestion request: %v", err)
	}
	if as.model == nil {
		return nil, fmt.Errorf("suggestion model is not configured")
	}

	prompt := BuildSuggestionPrompt(req)

	raw, err := as.model.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %v", err)
	}

	suggestion, err := parseSuggestion(raw)
	if err != nil {
		return nil, err
	}
	return suggestion, nil
}

// BuildSuggestionPrompt embeds the three inputs verbatim into the
// instruction template.
func BuildSuggestionPrompt(req *models.SuggestionRequest) string {
	return fmt.Sprintf(suggestionPromptTemplate,
		req.UserSchedule, req.AvailableSlots, req.ChargingDuration)
}

// parseSuggestion validates the model output against the fixed schema.
// Models occasionally wrap JSON in a markdown code fence even when told
// not to, so fences are stripped before decoding.
func parseSuggestion(raw string) (*models.ChargingSuggestion, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var suggestion models.ChargingSuggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestion); err != nil {
		return nil, fmt.Errorf("model response failed schema validation: %v", err)
	}
	if suggestion.SuggestedChargingTimes == "" || suggestion.Reasoning == "" {
		return nil, fmt.Errorf("model response failed schema validation: missing fields")
	}
	return &suggestion, nil
}
