package dto

import (
	"time"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// ListTransactionsParams defines query parameters for filtered listings.
// Dates are inclusive bounds in YYYY-MM-DD form.
type ListTransactionsParams struct {
	Search   string `form:"search"`
	UserID   string `form:"userID"`
	Category string `form:"category"`
	From     string `form:"from"`
	To       string `form:"to"`
	View     string `form:"view,default=default"`
}

// ToTransactionFilter converts the query parameters into a domain filter.
func (p ListTransactionsParams) ToTransactionFilter() (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{
		Search:   p.Search,
		UserID:   p.UserID,
		Category: p.Category,
		View:     domain.LedgerView(p.View),
	}
	if p.From != "" {
		from, err := time.Parse("2006-01-02", p.From)
		if err != nil {
			return domain.TransactionFilter{}, err
		}
		filter.From = &from
	}
	if p.To != "" {
		to, err := time.Parse("2006-01-02", p.To)
		if err != nil {
			return domain.TransactionFilter{}, err
		}
		// Push the upper bound to the end of the day so same-day entries match.
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	return filter, nil
}

// FilteredLedgerResponse is a filtered listing plus its running totals.
type FilteredLedgerResponse struct {
	Transactions     []TransactionResponse `json:"transactions"`
	Revenue          string                `json:"revenue"`
	Outflow          string                `json:"outflow"`
	RequisitionTotal string                `json:"requisitionTotal"`
}

// ToFilteredLedgerResponse converts the domain result into its response DTO.
func ToFilteredLedgerResponse(ledger *domain.FilteredLedger) FilteredLedgerResponse {
	return FilteredLedgerResponse{
		Transactions:     ToTransactionResponses(ledger.Transactions),
		Revenue:          ledger.Revenue.String(),
		Outflow:          ledger.Outflow.String(),
		RequisitionTotal: ledger.RequisitionTotal.String(),
	}
}

// SummaryResponse is the dashboard aggregate view.
type SummaryResponse struct {
	Income         string            `json:"income"`
	Expenses       string            `json:"expenses"`
	Balance        string            `json:"balance"`
	Count          int               `json:"count"`
	SourceBalances map[string]string `json:"sourceBalances"`
}

// ToSummaryResponse converts a domain.Summary into its response DTO.
func ToSummaryResponse(summary *domain.Summary) SummaryResponse {
	balances := make(map[string]string, len(summary.SourceBalances))
	for source, amount := range summary.SourceBalances {
		balances[string(source)] = amount.String()
	}
	return SummaryResponse{
		Income:         summary.Income.String(),
		Expenses:       summary.Expenses.String(),
		Balance:        summary.Balance.String(),
		Count:          summary.Count,
		SourceBalances: balances,
	}
}

// CategoryTotalResponse is one row of the expense breakdown.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// ToCategoryTotalResponses converts the breakdown rows.
func ToCategoryTotalResponses(rows []domain.CategoryTotal) []CategoryTotalResponse {
	out := make([]CategoryTotalResponse, len(rows))
	for i, row := range rows {
		out[i] = CategoryTotalResponse{Category: row.Category, Total: row.Total.String()}
	}
	return out
}
