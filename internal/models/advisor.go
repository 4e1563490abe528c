package models

// SuggestionRequest carries the three free-text inputs of the AI
// scheduling advisor. Only length is validated; the model does the
// semantic interpretation of dates and durations.
type SuggestionRequest struct {
	UserSchedule     string `json:"userSchedule" validate:"required,min=10"`
	AvailableSlots   string `json:"availableSlots"`
	ChargingDuration string `json:"chargingDuration" validate:"required,min=3"`
}

// ChargingSuggestion is the typed shape the model's JSON answer must
// satisfy. A response missing either field fails schema validation and
// is treated as an error.
type ChargingSuggestion struct {
	SuggestedChargingTimes string `json:"suggestedChargingTimes"`
	Reasoning              string `json:"reasoning"`
}
