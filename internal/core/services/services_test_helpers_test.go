package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/finvue/finvue_backend/internal/adapters/memstate"
	"github.com/finvue/finvue_backend/internal/core/domain"
)

// stubSnapshotRepo keeps the store purely in memory during tests.
type stubSnapshotRepo struct {
	state domain.AppState
}

func (s *stubSnapshotRepo) LoadOrInit(ctx context.Context) (domain.AppState, error) {
	return s.state, nil
}

func (s *stubSnapshotRepo) Save(ctx context.Context, state domain.AppState) error {
	return nil
}

var (
	adminViewer    = domain.Viewer{UserID: "u-admin", Username: "admin", Role: domain.RoleAdmin}
	managerViewer  = domain.Viewer{UserID: "u-manager", Username: "manager", Role: domain.RoleManager}
	employeeViewer = domain.Viewer{UserID: "u-employee", Username: "employee", Role: domain.RoleEmployee}
)

func seedUsers() []domain.User {
	now := time.Now()
	return []domain.User{
		{UserID: adminViewer.UserID, Username: adminViewer.Username, Role: domain.RoleAdmin, CreatedAt: now},
		{UserID: managerViewer.UserID, Username: managerViewer.Username, Role: domain.RoleManager, CreatedAt: now},
		{UserID: employeeViewer.UserID, Username: employeeViewer.Username, Role: domain.RoleEmployee, CreatedAt: now},
	}
}

// newTestStore builds a store around a seeded in-memory state.
func newTestStore(t *testing.T, state domain.AppState) *memstate.Store {
	t.Helper()
	if state.Categories == nil {
		state.Categories = domain.SeedCategories()
	}
	if state.Users == nil {
		state.Users = seedUsers()
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := memstate.Open(context.Background(), &stubSnapshotRepo{state: state}, logger)
	require.NoError(t, err)
	return store
}
