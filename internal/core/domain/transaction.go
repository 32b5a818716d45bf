package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// TransactionStatus is the approval workflow state of a transaction.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "PENDING"
	StatusVerified TransactionStatus = "VERIFIED"
	StatusApproved TransactionStatus = "APPROVED"
	StatusRejected TransactionStatus = "REJECTED"
)

// PaymentSource is one of the fixed settlement rails balances are tracked against.
type PaymentSource string

const (
	SourceCash  PaymentSource = "Cash"
	SourceBank  PaymentSource = "Bank"
	SourceBkash PaymentSource = "Bkash"
	SourceNagad PaymentSource = "Nagad"
)

// PaymentSources lists every settlement rail in display order.
var PaymentSources = []PaymentSource{SourceCash, SourceBank, SourceBkash, SourceNagad}

// ValidPaymentSource reports whether s is one of the known settlement rails.
func ValidPaymentSource(s PaymentSource) bool {
	for _, known := range PaymentSources {
		if s == known {
			return true
		}
	}
	return false
}

// RequisitionCategory marks a transaction as excluded from all financial
// aggregates; requisitions are tracked only for their own approval audit trail.
const RequisitionCategory = "Requisition"

// Transaction is a single ledger entry. Amount is always positive; the type
// carries the direction. After creation only Status changes through the
// workflow; everything else is edited wholesale or not at all.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	Amount        decimal.Decimal   `json:"amount"` // Positive
	Type          TransactionType   `json:"type"`
	Category      string            `json:"category"`
	SubCategory   string            `json:"subCategory,omitempty"`
	Source        PaymentSource     `json:"source"`
	Date          time.Time         `json:"date"`
	Note          string            `json:"note"`
	UserID        string            `json:"userID"`    // Owner
	CreatedBy     string            `json:"createdBy"` // Owner display name at creation time
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// IsRequisition reports whether the transaction lives on the isolated
// requisition ledger.
func (t Transaction) IsRequisition() bool {
	return t.Category == RequisitionCategory
}
