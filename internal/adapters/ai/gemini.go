// Package ai generates spending tips through the Gemini REST API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvue/finvue_backend/internal/core/domain"
	"github.com/finvue/finvue_backend/internal/core/ports/clients"
)

const (
	defaultModel   = "gemini-2.0-flash"
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
	requestTimeout = 30 * time.Second
)

// GeminiClient implements clients.TipGenerator against the Generative
// Language API.
type GeminiClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiClient creates a tip generator. model falls back to a default
// when empty.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = defaultModel
	}
	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

var _ clients.TipGenerator = (*GeminiClient)(nil)

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) Analyze(ctx context.Context, transactions []domain.Transaction) ([]domain.Suggestion, error) {
	prompt := buildPrompt(transactions)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf(geminiEndpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini returned %s", resp.Status)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	return parseSuggestions(parsed.Candidates[0].Content.Parts[0].Text)
}

// buildPrompt summarizes spending per category; raw notes stay local.
func buildPrompt(transactions []domain.Transaction) string {
	totals := make(map[string]decimal.Decimal)
	var income, expenses decimal.Decimal
	for _, t := range transactions {
		if t.Type == domain.Income {
			income = income.Add(t.Amount)
			continue
		}
		expenses = expenses.Add(t.Amount)
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	categories := make([]string, 0, len(totals))
	for name := range totals {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString("You are a financial advisor for a small business. Total income: ")
	b.WriteString(income.String())
	b.WriteString(", total expenses: ")
	b.WriteString(expenses.String())
	b.WriteString(". Expenses by category: ")
	for i, name := range categories {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%s", name, totals[name])
	}
	b.WriteString(". Respond with only a JSON array of objects, each {\"tip\": string, \"type\": \"saving\"|\"warning\"|\"info\"}, at most 3 items, no markdown.")
	return b.String()
}

// parseSuggestions decodes the model output, tolerating markdown fences.
func parseSuggestions(text string) ([]domain.Suggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var suggestions []domain.Suggestion
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}
	for i, s := range suggestions {
		switch s.Type {
		case domain.SuggestionSaving, domain.SuggestionWarning, domain.SuggestionInfo:
		default:
			suggestions[i].Type = domain.SuggestionInfo
		}
	}
	return suggestions, nil
}
