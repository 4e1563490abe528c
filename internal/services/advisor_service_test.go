package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ujval10/EV-Recharge/internal/models"
)

type mockSuggestionModel struct {
	generateFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockSuggestionModel) Generate(ctx context.Context, prompt string) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, prompt)
	}
	return "", nil
}

func validSuggestionRequest() *models.SuggestionRequest {
	return &models.SuggestionRequest{
		UserSchedule:     "Meetings from 9am to 11am, gym at 6pm",
		AvailableSlots:   "10:00 AM, 02:00 PM, 03:00 PM",
		ChargingDuration: "2 hours",
	}
}

func TestBuildSuggestionPromptEmbedsInputs(t *testing.T) {
	req := validSuggestionRequest()
	prompt := BuildSuggestionPrompt(req)

	for _, want := range []string{req.UserSchedule, req.AvailableSlots, req.ChargingDuration} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
	if !strings.Contains(prompt, "suggestedChargingTimes") || !strings.Contains(prompt, "reasoning") {
		t.Error("expected prompt to name the two response fields")
	}
}

func TestSuggestRejectsShortInputs(t *testing.T) {
	modelCalled := false
	service := NewAdvisorService(&mockSuggestionModel{
		generateFunc: func(ctx context.Context, prompt string) (string, error) {
			modelCalled = true
			return "", nil
		},
	})

	tests := []struct {
		name string
		req  *models.SuggestionRequest
	}{
		{
			name: "schedule too short",
			req: &models.SuggestionRequest{
				UserSchedule:     "busy",
				AvailableSlots:   "10:00 AM",
				ChargingDuration: "2 hours",
			},
		},
		{
			name: "duration too short",
			req: &models.SuggestionRequest{
				UserSchedule:     "Meetings from 9am to 11am",
				AvailableSlots:   "10:00 AM",
				ChargingDuration: "2h",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.Suggest(context.Background(), tt.req); err == nil {
				t.Fatal("expected a validation error")
			}
			if modelCalled {
				t.Error("expected the model not to be called on invalid input")
			}
		})
	}
}

func TestSuggestPassesModelAnswerThrough(t *testing.T) {
	service := NewAdvisorService(&mockSuggestionModel{
		generateFunc: func(ctx context.Context, prompt string) (string, error) {
			return `{"suggestedChargingTimes": "02:00 PM", "reasoning": "It sits between your meetings and the gym."}`, nil
		},
	})

	suggestion, err := service.Suggest(context.Background(), validSuggestionRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if suggestion.SuggestedChargingTimes != "02:00 PM" {
		t.Errorf("unexpected suggestion: %q", suggestion.SuggestedChargingTimes)
	}
	if suggestion.Reasoning == "" {
		t.Error("expected reasoning to be carried through")
	}
}

func TestSuggestSurfacesModelFailure(t *testing.T) {
	wantErr := errors.New("rate limited")
	service := NewAdvisorService(&mockSuggestionModel{
		generateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", wantErr
		},
	})

	if _, err := service.Suggest(context.Background(), validSuggestionRequest()); err == nil {
		t.Fatal("expected the model failure to surface")
	}
}

func TestParseSuggestionStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"suggestedChargingTimes\": \"03:00 PM\", \"reasoning\": \"Free afternoon.\"}\n```"

	suggestion, err := parseSuggestion(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if suggestion.SuggestedChargingTimes != "03:00 PM" {
		t.Errorf("unexpected suggestion: %q", suggestion.SuggestedChargingTimes)
	}
}

func TestParseSuggestionRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "charge at 2pm, trust me"},
		{name: "missing reasoning", raw: `{"suggestedChargingTimes": "02:00 PM"}`},
		{name: "missing suggestion", raw: `{"reasoning": "because"}`},
		{name: "empty object", raw: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseSuggestion(tt.raw); err == nil {
				t.Fatal("expected a schema validation error")
			}
		})
	}
}
