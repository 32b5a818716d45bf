package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// CreateTransactionRequest defines the data required to record a ledger entry.
// Status and ownership are derived server-side and cannot be supplied.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Category    string                 `json:"category" binding:"required"`
	SubCategory string                 `json:"subCategory"`
	Source      domain.PaymentSource   `json:"source" binding:"required"`
	Date        time.Time              `json:"date" binding:"required"`
	Note        string                 `json:"note"`
}

// UpdateTransactionRequest defines the editable fields of a transaction.
// Pointers distinguish omitted fields from zero values; status changes go
// through the workflow endpoint instead.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal      `json:"amount"`
	Category    *string               `json:"category"`
	SubCategory *string               `json:"subCategory"`
	Source      *domain.PaymentSource `json:"source"`
	Date        *time.Time            `json:"date"`
	Note        *string               `json:"note"`
}

// SetTransactionStatusRequest carries the target workflow state.
type SetTransactionStatusRequest struct {
	Status domain.TransactionStatus `json:"status" binding:"required,oneof=VERIFIED APPROVED REJECTED"`
}

// TransactionResponse is the public representation of a ledger entry.
type TransactionResponse struct {
	TransactionID string                   `json:"transactionID"`
	Amount        decimal.Decimal          `json:"amount"`
	Type          domain.TransactionType   `json:"type"`
	Category      string                   `json:"category"`
	SubCategory   string                   `json:"subCategory,omitempty"`
	Source        domain.PaymentSource     `json:"source"`
	Date          time.Time                `json:"date"`
	Note          string                   `json:"note"`
	UserID        string                   `json:"userID"`
	CreatedBy     string                   `json:"createdBy"`
	Status        domain.TransactionStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		Type:          txn.Type,
		Category:      txn.Category,
		SubCategory:   txn.SubCategory,
		Source:        txn.Source,
		Date:          txn.Date,
		Note:          txn.Note,
		UserID:        txn.UserID,
		CreatedBy:     txn.CreatedBy,
		Status:        txn.Status,
		CreatedAt:     txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}
