package services

import (
	"github.com/finvue/finvue_backend/internal/core/ports/clients"
	portsrepo "github.com/finvue/finvue_backend/internal/core/ports/repositories"
	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service with its dependencies. The activity
// service is built first; everything else records through it.
func NewServiceContainer(
	repos portsrepo.RepositoryContainer,
	syncer clients.RemoteSyncer,
	exporter clients.SpreadsheetExporter,
	tips clients.TipGenerator,
	spreadsheetID string,
) *portssvc.ServiceContainer {
	activity := NewActivityService(repos.Activity)
	category := NewCategoryService(repos.Category, activity)

	return &portssvc.ServiceContainer{
		Auth:        NewAuthService(repos.User, activity),
		User:        NewUserService(repos.User, activity),
		Transaction: NewTransactionService(repos.Transaction, category, activity),
		Reporting:   NewReportingService(repos.State),
		Activity:    activity,
		Settings:    NewSettingsService(repos.Settings, activity),
		Category:    category,
		Sync:        NewSyncService(repos.State, repos.Settings, syncer, exporter, activity, spreadsheetID),
		Insights:    NewInsightsService(repos.State, tips),
	}
}
