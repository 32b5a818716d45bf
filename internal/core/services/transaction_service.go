package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
	portsrepo "github.com/finvue/finvue_backend/internal/core/ports/repositories"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/dto"
	"github.com/finvue/finvue_backend/internal/utils"
)

// transactionService implements the ledger write path and the approval
// workflow on top of the state store.
type transactionService struct {
	BaseService
	txnRepo  portsrepo.TransactionRepository
	category portssvc.CategorySvcFacade
	activity portssvc.ActivityRecorder
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo portsrepo.TransactionRepository, category portssvc.CategorySvcFacade, activity portssvc.ActivityRecorder) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo, category: category, activity: activity}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string, actor domain.Viewer) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.IsGlobalViewer() && txn.UserID != actor.UserID {
		// Hidden entries read as absent, not as forbidden.
		return nil, apperrors.ErrNotFound
	}
	return txn, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, actor domain.Viewer) (*domain.Transaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !domain.ValidPaymentSource(req.Source) {
		return nil, fmt.Errorf("%w: unknown payment source %q", apperrors.ErrValidation, req.Source)
	}
	if err := s.category.ValidateSelection(ctx, req.Category, req.SubCategory, req.Type, actor); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        req.Amount,
		Type:          req.Type,
		Category:      req.Category,
		SubCategory:   req.SubCategory,
		Source:        req.Source,
		Date:          req.Date,
		Note:          req.Note,
		UserID:        actor.UserID,
		CreatedBy:     actor.Username,
		Status:        domain.InitialStatus(req.Type, actor.Role),
		CreatedAt:     time.Now(),
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.activity.Record(ctx, actor.Username, "Transaction Added",
		fmt.Sprintf("%s: %s (%s)", txn.Type, utils.FormatAmount(txn.Amount), txn.Category), domain.ActivityTransaction)
	s.LogInfo(ctx, "transaction created", "transaction_id", txn.TransactionID, "status", string(txn.Status))
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, actor domain.Viewer) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	// Admins edit anything; owners may only touch their own entries while
	// they are still pending.
	if actor.Role != domain.RoleAdmin {
		if txn.UserID != actor.UserID || txn.Status != domain.StatusPending {
			return nil, apperrors.ErrForbidden
		}
	}

	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		txn.Amount = *req.Amount
	}
	if req.Source != nil {
		if !domain.ValidPaymentSource(*req.Source) {
			return nil, fmt.Errorf("%w: unknown payment source %q", apperrors.ErrValidation, *req.Source)
		}
		txn.Source = *req.Source
	}
	if req.Category != nil {
		txn.Category = *req.Category
		txn.SubCategory = ""
	}
	if req.SubCategory != nil {
		txn.SubCategory = *req.SubCategory
	}
	if req.Category != nil || req.SubCategory != nil {
		if err := s.category.ValidateSelection(ctx, txn.Category, txn.SubCategory, txn.Type, actor); err != nil {
			return nil, err
		}
	}
	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Note != nil {
		txn.Note = *req.Note
	}

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.activity.Record(ctx, actor.Username, "Transaction Updated",
		fmt.Sprintf("%s: %s (%s)", txn.Type, utils.FormatAmount(txn.Amount), txn.Category), domain.ActivityTransaction)
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, actor domain.Viewer) error {
	if actor.Role != domain.RoleAdmin {
		return apperrors.ErrForbidden
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.activity.Record(ctx, actor.Username, "Transaction Deleted",
		fmt.Sprintf("%s: %s (%s)", txn.Type, utils.FormatAmount(txn.Amount), txn.Category), domain.ActivityTransaction)
	s.LogInfo(ctx, "transaction deleted", "transaction_id", transactionID)
	return nil
}

func (s *transactionService) SetStatus(ctx context.Context, transactionID string, target domain.TransactionStatus, actor domain.Viewer) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(*txn, target, actor.Role) {
		return nil, apperrors.ErrForbidden
	}

	previous := txn.Status
	txn.Status = target
	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction status: %w", err)
	}

	s.activity.Record(ctx, actor.Username, fmt.Sprintf("Status Change: %s", target),
		fmt.Sprintf("Txn #%s moved %s to %s", shortID(txn.TransactionID), previous, target), domain.ActivityTransaction)
	s.LogInfo(ctx, "transaction status changed",
		"transaction_id", txn.TransactionID, "from", string(previous), "to", string(target))
	return txn, nil
}

// shortID is the 8-character prefix used in human-facing log details.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
