package services

import (
	"context"

	"github.com/finvue/finvue_backend/internal/core/domain"
)

// ReportingSvcFacade defines the read-only aggregation operations. All results
// are scoped to the viewer: employees see only their own entries, managers and
// admins see everything. Requisitions never contribute to any total.
type ReportingSvcFacade interface {
	// Summary computes the dashboard aggregates over approved entries.
	Summary(ctx context.Context, viewer domain.Viewer) (*domain.Summary, error)

	// FilteredLedger lists transactions matching the filter, newest first,
	// together with the running totals of the matched set.
	FilteredLedger(ctx context.Context, viewer domain.Viewer, filter domain.TransactionFilter) (*domain.FilteredLedger, error)

	// CategoryBreakdown totals approved expenses per category.
	CategoryBreakdown(ctx context.Context, viewer domain.Viewer) ([]domain.CategoryTotal, error)
}
