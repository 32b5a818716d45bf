package ai

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

func TestParseSuggestionsPlainArray(t *testing.T) {
	got, err := parseSuggestions(`[{"tip":"Cut food spending","type":"warning"}]`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.SuggestionWarning, got[0].Type)
}

func TestParseSuggestionsStripsMarkdownFences(t *testing.T) {
	got, err := parseSuggestions("```json\n[{\"tip\":\"Save more\",\"type\":\"saving\"}]\n```")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Save more", got[0].Tip)
	assert.Equal(t, domain.SuggestionSaving, got[0].Type)
}

func TestParseSuggestionsNormalizesUnknownType(t *testing.T) {
	got, err := parseSuggestions(`[{"tip":"Something","type":"critical"}]`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.SuggestionInfo, got[0].Type)
}

func TestParseSuggestionsRejectsNonJSON(t *testing.T) {
	_, err := parseSuggestions("Sure! Here are some tips:")
	assert.Error(t, err)
}

func TestBuildPromptAggregatesByCategory(t *testing.T) {
	prompt := buildPrompt([]domain.Transaction{
		{Type: domain.Income, Amount: decimal.NewFromInt(1000)},
		{Type: domain.Expense, Category: "Food", Amount: decimal.NewFromInt(200)},
		{Type: domain.Expense, Category: "Food", Amount: decimal.NewFromInt(100)},
		{Type: domain.Expense, Category: "Utilities", Amount: decimal.NewFromInt(50)},
	})

	assert.Contains(t, prompt, "Total income: 1000")
	assert.Contains(t, prompt, "Food=300")
	assert.Contains(t, prompt, "Utilities=50")
	// Raw transaction notes never leave the process.
	assert.NotContains(t, prompt, "note")
}
