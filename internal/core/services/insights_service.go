package services

import (
	"context"
	"fmt"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
	"github.com/finvue/finvue_backend/internal/core/ports/clients"
	portsrepo "github.com/finvue/finvue_backend/internal/core/ports/repositories"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
)

// insightsService feeds the viewer's approved expenses to the tip generator.
type insightsService struct {
	BaseService
	state portsrepo.StateReader
	tips  clients.TipGenerator
}

// NewInsightsService creates a new insights service. tips may be nil when no
// AI key is configured.
func NewInsightsService(state portsrepo.StateReader, tips clients.TipGenerator) portssvc.InsightsSvcFacade {
	return &insightsService{state: state, tips: tips}
}

var _ portssvc.InsightsSvcFacade = (*insightsService)(nil)

func (s *insightsService) SpendingTips(ctx context.Context, viewer domain.Viewer) ([]domain.Suggestion, error) {
	if s.tips == nil {
		return nil, fmt.Errorf("%w: AI insights are not configured", apperrors.ErrValidation)
	}

	snapshot, err := s.state.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read state snapshot: %w", err)
	}

	relevant := make([]domain.Transaction, 0, len(snapshot.Transactions))
	for _, t := range scoped(snapshot.Transactions, viewer) {
		if t.Status == domain.StatusApproved && !t.IsRequisition() {
			relevant = append(relevant, t)
		}
	}
	if len(relevant) == 0 {
		return []domain.Suggestion{{Tip: "Record some transactions to get spending insights.", Type: domain.SuggestionInfo}}, nil
	}

	suggestions, err := s.tips.Analyze(ctx, relevant)
	if err != nil {
		s.LogError(ctx, err, "tip generation failed")
		return nil, fmt.Errorf("failed to generate spending tips: %w", err)
	}
	return suggestions, nil
}
