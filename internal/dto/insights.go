package dto

import "github.com/finvue/finvue_backend/internal/core/domain"

// SuggestionResponse is one AI-generated spending tip.
type SuggestionResponse struct {
	Tip  string                `json:"tip"`
	Type domain.SuggestionType `json:"type"`
}

// InsightsResponse wraps the generated tips.
type InsightsResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// ToInsightsResponse converts domain suggestions into the response DTO.
func ToInsightsResponse(suggestions []domain.Suggestion) InsightsResponse {
	out := make([]SuggestionResponse, len(suggestions))
	for i, s := range suggestions {
		out[i] = SuggestionResponse{Tip: s.Tip, Type: s.Type}
	}
	return InsightsResponse{Suggestions: out}
}
