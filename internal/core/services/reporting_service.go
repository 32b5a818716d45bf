package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finvue/finvue_backend/internal/core/domain"
	portsrepo "github.com/finvue/finvue_backend/internal/core/ports/repositories"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
)

// reportingService computes aggregates over a point-in-time snapshot; it never
// mutates state, so repeated calls over the same ledger give identical results.
type reportingService struct {
	BaseService
	state portsrepo.StateReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(state portsrepo.StateReader) portssvc.ReportingSvcFacade {
	return &reportingService{state: state}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// scoped returns the transactions the viewer is allowed to see.
func scoped(txns []domain.Transaction, viewer domain.Viewer) []domain.Transaction {
	if viewer.Role.IsGlobalViewer() {
		return txns
	}
	own := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.UserID == viewer.UserID {
			own = append(own, t)
		}
	}
	return own
}

// countsTowardTotals reports whether a transaction moves money in the
// aggregates. Requisitions never do, regardless of status.
func countsTowardTotals(t domain.Transaction) bool {
	return t.Status == domain.StatusApproved && !t.IsRequisition()
}

func (s *reportingService) Summary(ctx context.Context, viewer domain.Viewer) (*domain.Summary, error) {
	snapshot, err := s.state.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read state snapshot: %w", err)
	}

	summary := &domain.Summary{
		SourceBalances: make(map[domain.PaymentSource]decimal.Decimal, len(domain.PaymentSources)),
	}
	for _, source := range domain.PaymentSources {
		summary.SourceBalances[source] = decimal.Zero
	}

	for _, t := range scoped(snapshot.Transactions, viewer) {
		if !countsTowardTotals(t) {
			continue
		}
		summary.Count++
		if t.Type == domain.Income {
			summary.Income = summary.Income.Add(t.Amount)
			summary.SourceBalances[t.Source] = summary.SourceBalances[t.Source].Add(t.Amount)
		} else {
			summary.Expenses = summary.Expenses.Add(t.Amount)
			summary.SourceBalances[t.Source] = summary.SourceBalances[t.Source].Sub(t.Amount)
		}
	}
	summary.Balance = summary.Income.Sub(summary.Expenses)
	return summary, nil
}

// inView reports whether a transaction belongs to the requested partition.
// The default view hides the requisition ledger and rejected entries; each of
// the other views shows exactly one of those, so a rejected requisition only
// ever appears under the rejected view.
func inView(t domain.Transaction, view domain.LedgerView) bool {
	switch view {
	case domain.ViewRequisitions:
		return t.IsRequisition() && t.Status != domain.StatusRejected
	case domain.ViewRejected:
		return t.Status == domain.StatusRejected
	default:
		return !t.IsRequisition() && t.Status != domain.StatusRejected
	}
}

func matchesSearch(t domain.Transaction, needle string) bool {
	if needle == "" {
		return true
	}
	// Free text covers the note, the category name and the creator; the
	// sub-category is reachable through the category it belongs to.
	for _, hay := range []string{t.Note, t.Category, t.CreatedBy} {
		if strings.Contains(strings.ToLower(hay), needle) {
			return true
		}
	}
	return false
}

func (s *reportingService) FilteredLedger(ctx context.Context, viewer domain.Viewer, filter domain.TransactionFilter) (*domain.FilteredLedger, error) {
	snapshot, err := s.state.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read state snapshot: %w", err)
	}

	needle := strings.ToLower(filter.Search)
	matched := make([]domain.Transaction, 0, len(snapshot.Transactions))
	for _, t := range scoped(snapshot.Transactions, viewer) {
		if !inView(t, filter.View) {
			continue
		}
		if !matchesSearch(t, needle) {
			continue
		}
		if filter.UserID != "" && t.UserID != filter.UserID {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if filter.From != nil && t.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && t.Date.After(*filter.To) {
			continue
		}
		matched = append(matched, t)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})

	ledger := &domain.FilteredLedger{Transactions: matched}
	for _, t := range matched {
		if t.IsRequisition() {
			if t.Status != domain.StatusRejected {
				ledger.RequisitionTotal = ledger.RequisitionTotal.Add(t.Amount)
			}
			continue
		}
		if t.Status != domain.StatusApproved {
			continue
		}
		if t.Type == domain.Income {
			ledger.Revenue = ledger.Revenue.Add(t.Amount)
		} else {
			ledger.Outflow = ledger.Outflow.Add(t.Amount)
		}
	}
	return ledger, nil
}

func (s *reportingService) CategoryBreakdown(ctx context.Context, viewer domain.Viewer) ([]domain.CategoryTotal, error) {
	snapshot, err := s.state.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read state snapshot: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, t := range scoped(snapshot.Transactions, viewer) {
		if !countsTowardTotals(t) || t.Type != domain.Expense {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	rows := make([]domain.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		rows = append(rows, domain.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows, nil
}
