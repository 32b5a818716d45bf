package repositories

import (
	"context"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// TransactionReader defines read operations for ledger transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction.
	// Returns apperrors.ErrNotFound if the id is absent.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns every transaction, most recently created first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger transactions.
type TransactionWriter interface {
	// SaveTransaction stores a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction replaces the stored transaction with the same id.
	// Returns apperrors.ErrNotFound if the id is absent.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction permanently removes a transaction.
	// Returns apperrors.ErrNotFound if the id is absent.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepository combines transaction read and write operations.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
