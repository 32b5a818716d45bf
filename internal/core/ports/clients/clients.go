// Package clients declares the outbound collaborator interfaces the services
// depend on. Implementations live under internal/adapters.
package clients

import (
	"context"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// RemoteSyncer pushes the whole aggregate to an external webhook.
type RemoteSyncer interface {
	// Push posts the state to the webhook URL. A non-2xx response or
	// transport failure surfaces as apperrors.ErrSyncFailure.
	Push(ctx context.Context, webhookURL string, state domain.AppState) error
}

// SpreadsheetExporter writes ledger rows into a Google Sheet.
type SpreadsheetExporter interface {
	// Export replaces the target sheet contents with the given transactions
	// and returns the number of data rows written.
	Export(ctx context.Context, spreadsheetID string, transactions []domain.Transaction) (int, error)
}

// TipGenerator produces spending suggestions from a set of transactions.
type TipGenerator interface {
	Analyze(ctx context.Context, transactions []domain.Transaction) ([]domain.Suggestion, error)
}
