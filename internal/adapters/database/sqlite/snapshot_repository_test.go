package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/finvue/finvue_backend/internal/adapters/database/sqlite"
	"github.com/finvue/finvue_backend/internal/core/domain"
	"github.com/finvue/finvue_backend/internal/utils"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE app_snapshot (
		storage_key TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	require.NoError(t, err)
	return db
}

func TestLoadOrInitBootstrapsFreshInstall(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewSnapshotRepository(openTestDB(t))

	state, err := repo.LoadOrInit(ctx)
	require.NoError(t, err)

	require.Len(t, state.Users, 1)
	admin := state.Users[0]
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.True(t, utils.CheckPasswordHash("admin", admin.PasswordHash))

	assert.Equal(t, sqlite.DefaultCompanyName, state.CompanyName)
	assert.Equal(t, domain.SeedCategories(), state.Categories)
	assert.Empty(t, state.Transactions)
	assert.Empty(t, state.ActivityLogs)
}

func TestLoadOrInitIsStableAcrossCalls(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewSnapshotRepository(openTestDB(t))

	first, err := repo.LoadOrInit(ctx)
	require.NoError(t, err)
	second, err := repo.LoadOrInit(ctx)
	require.NoError(t, err)

	// The bootstrap row is written once; a second load must not mint a new admin.
	require.Len(t, second.Users, 1)
	assert.Equal(t, first.Users[0].UserID, second.Users[0].UserID)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewSnapshotRepository(openTestDB(t))

	state, err := repo.LoadOrInit(ctx)
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	state.CompanyName = "Acme Ltd"
	state.Transactions = []domain.Transaction{{
		TransactionID: "t-1",
		Type:          domain.Income,
		Category:      "Sales",
		Source:        domain.SourceBank,
		Status:        domain.StatusApproved,
		Date:          now,
		CreatedAt:     now,
	}}
	require.NoError(t, repo.Save(ctx, state))

	loaded, err := repo.LoadOrInit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", loaded.CompanyName)
	require.Len(t, loaded.Transactions, 1)
	assert.Equal(t, "t-1", loaded.Transactions[0].TransactionID)
	assert.True(t, loaded.Transactions[0].Date.Equal(now))
}

func TestLoadFillsDefaultsOnSparseSnapshot(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := sqlite.NewSnapshotRepository(db)

	// Simulate a snapshot written by an older version with most fields absent.
	_, err := db.Exec(`INSERT INTO app_snapshot (storage_key, payload) VALUES (?, ?)`,
		sqlite.StorageKey, `{"users":[{"userID":"u-1","username":"admin","role":"ADMIN"}]}`)
	require.NoError(t, err)

	state, err := repo.LoadOrInit(ctx)
	require.NoError(t, err)
	assert.NotNil(t, state.Transactions)
	assert.NotNil(t, state.ActivityLogs)
	assert.Equal(t, domain.SeedCategories(), state.Categories)
	assert.Equal(t, sqlite.DefaultCompanyName, state.CompanyName)
	require.Len(t, state.Users, 1)
}
