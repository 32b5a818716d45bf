package services

import (
	"context"

	"github.com/finvue/finvue_backend/internal/core/domain"
	"github.com/finvue/finvue_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger entries.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction visible to the actor.
	GetTransactionByID(ctx context.Context, transactionID string, actor domain.Viewer) (*domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for ledger entries.
type TransactionWriterSvc interface {
	// CreateTransaction records a new entry. The initial workflow status is
	// derived from the type and the actor's role, never from the request.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor domain.Viewer) (*domain.Transaction, error)

	// UpdateTransaction edits the non-workflow fields of an entry.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, actor domain.Viewer) (*domain.Transaction, error)

	// DeleteTransaction removes an entry. Admin only.
	DeleteTransaction(ctx context.Context, transactionID string, actor domain.Viewer) error
}

// TransactionWorkflowSvc defines the approval state machine operations.
type TransactionWorkflowSvc interface {
	// SetStatus moves a transaction to the target workflow state if the
	// actor's role permits that transition from the current state.
	SetStatus(ctx context.Context, transactionID string, target domain.TransactionStatus, actor domain.Viewer) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransactionWorkflowSvc
}
