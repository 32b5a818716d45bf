package domain

// SuggestionType classifies an AI spending tip.
type SuggestionType string

const (
	SuggestionSaving  SuggestionType = "saving"
	SuggestionWarning SuggestionType = "warning"
	SuggestionInfo    SuggestionType = "info"
)

// Suggestion is one AI-generated spending tip. The first suggestion in a
// result set is treated as the headline tip.
type Suggestion struct {
	Tip  string         `json:"tip"`
	Type SuggestionType `json:"type"`
}
