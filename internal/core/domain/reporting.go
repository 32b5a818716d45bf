package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes formatted amounts in log details and exports.
const CurrencySymbol = "৳"

// LedgerView selects which partition of the ledger a filtered listing shows.
// The default view hides requisitions and rejected entries; the specialized
// views show exactly one of those partitions. A rejected requisition appears
// only under ViewRejected.
type LedgerView string

const (
	ViewDefault      LedgerView = "default"
	ViewRequisitions LedgerView = "requisitions"
	ViewRejected     LedgerView = "rejected"
)

// TransactionFilter narrows a ledger listing. Zero values mean "no filter".
// Date bounds are inclusive.
type TransactionFilter struct {
	Search   string
	UserID   string
	Category string
	From     *time.Time
	To       *time.Time
	View     LedgerView
}

// Summary holds the dashboard aggregates over APPROVED, non-requisition
// transactions within the viewer's scope.
type Summary struct {
	Income         decimal.Decimal                  `json:"income"`
	Expenses       decimal.Decimal                  `json:"expenses"`
	Balance        decimal.Decimal                  `json:"balance"`
	Count          int                              `json:"count"`
	SourceBalances map[PaymentSource]decimal.Decimal `json:"sourceBalances"`
}

// CategoryTotal is one slice of the expense breakdown chart.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// FilteredLedger is the result of a filtered listing plus the totals the
// transaction screens display alongside it.
type FilteredLedger struct {
	Transactions     []Transaction   `json:"transactions"`
	Revenue          decimal.Decimal `json:"revenue"`
	Outflow          decimal.Decimal `json:"outflow"`
	RequisitionTotal decimal.Decimal `json:"requisitionTotal"`
}
