// Package sheets holds the spreadsheet-facing adapters: the Apps Script
// webhook pusher and the Google Sheets exporter.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
	"github.com/finvue/finvue_backend/internal/core/ports/clients"
)

const webhookTimeout = 30 * time.Second

// webhookSyncer posts the whole aggregate to a Google Apps Script web app.
type webhookSyncer struct {
	httpClient *http.Client
}

// NewWebhookSyncer creates a syncer with a bounded HTTP client.
func NewWebhookSyncer() clients.RemoteSyncer {
	return &webhookSyncer{httpClient: &http.Client{Timeout: webhookTimeout}}
}

var _ clients.RemoteSyncer = (*webhookSyncer)(nil)

// syncEnvelope is the payload shape the Apps Script endpoint expects.
type syncEnvelope struct {
	Action string          `json:"action"`
	Data   domain.AppState `json:"data"`
}

func (s *webhookSyncer) Push(ctx context.Context, webhookURL string, state domain.AppState) error {
	body, err := json.Marshal(syncEnvelope{Action: "sync", Data: state})
	if err != nil {
		return fmt.Errorf("failed to encode sync payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrSyncFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: webhook returned %s", apperrors.ErrSyncFailure, resp.Status)
	}
	return nil
}
