// Package sqlite persists the application state as a single JSON document in
// a local SQLite database, keyed by a fixed storage key.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finvue/finvue_backend/internal/core/domain"
	portsrepo "github.com/finvue/finvue_backend/internal/core/ports/repositories"
	"github.com/finvue/finvue_backend/internal/utils"
)

// StorageKey identifies the snapshot row. Kept stable across versions so
// existing installations load their data after an upgrade.
const StorageKey = "finvue_data_v2"

// DefaultCompanyName brands a fresh installation.
const DefaultCompanyName = "FinVue Enterprise"

const (
	bootstrapAdminUsername = "admin"
	bootstrapAdminPassword = "admin"
)

// snapshotRepository implements portsrepo.SnapshotRepository over database/sql.
type snapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a snapshot repository on the given database.
func NewSnapshotRepository(db *sql.DB) portsrepo.SnapshotRepository {
	return &snapshotRepository{db: db}
}

var _ portsrepo.SnapshotRepository = (*snapshotRepository)(nil)

func (r *snapshotRepository) LoadOrInit(ctx context.Context) (domain.AppState, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM app_snapshot WHERE storage_key = ?`, StorageKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		state, err := bootstrapState()
		if err != nil {
			return domain.AppState{}, err
		}
		if err := r.Save(ctx, state); err != nil {
			return domain.AppState{}, fmt.Errorf("failed to store bootstrap snapshot: %w", err)
		}
		return state, nil
	}
	if err != nil {
		return domain.AppState{}, fmt.Errorf("failed to read snapshot row: %w", err)
	}

	var state domain.AppState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return domain.AppState{}, fmt.Errorf("failed to decode snapshot payload: %w", err)
	}
	applyDefaults(&state)
	return state, nil
}

func (r *snapshotRepository) Save(ctx context.Context, state domain.AppState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot payload: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO app_snapshot (storage_key, payload, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(storage_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		StorageKey, string(payload))
	if err != nil {
		return fmt.Errorf("failed to write snapshot row: %w", err)
	}
	return nil
}

// applyDefaults fills in fields a snapshot written by an older version may
// lack, so loading stays forward-compatible.
func applyDefaults(state *domain.AppState) {
	if state.Transactions == nil {
		state.Transactions = []domain.Transaction{}
	}
	if state.ActivityLogs == nil {
		state.ActivityLogs = []domain.ActivityLog{}
	}
	if len(state.Categories) == 0 {
		state.Categories = domain.SeedCategories()
	}
	if state.CompanyName == "" {
		state.CompanyName = DefaultCompanyName
	}
}

// bootstrapState builds the initial aggregate for a fresh installation: one
// admin account, the seeded taxonomy and nothing else.
func bootstrapState() (domain.AppState, error) {
	hash, err := utils.HashPassword(bootstrapAdminPassword)
	if err != nil {
		return domain.AppState{}, fmt.Errorf("failed to hash bootstrap password: %w", err)
	}
	admin := domain.User{
		UserID:       uuid.NewString(),
		Username:     bootstrapAdminUsername,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	return domain.AppState{
		Transactions: []domain.Transaction{},
		Categories:   domain.SeedCategories(),
		Users:        []domain.User{admin},
		ActivityLogs: []domain.ActivityLog{},
		CompanyName:  DefaultCompanyName,
	}, nil
}
