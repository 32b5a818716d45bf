package memstate_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finvue/finvue_backend/internal/adapters/memstate"
	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
)

type stubSnapshots struct {
	state domain.AppState
}

func (s *stubSnapshots) LoadOrInit(ctx context.Context) (domain.AppState, error) {
	return s.state, nil
}

func (s *stubSnapshots) Save(ctx context.Context, state domain.AppState) error {
	return nil
}

func newStore(t *testing.T, state domain.AppState) *memstate.Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := memstate.Open(context.Background(), &stubSnapshots{state: state}, logger)
	require.NoError(t, err)
	return store
}

// slowSnapshots stalls the first Save until released and remembers the state
// of the most recently completed one.
type slowSnapshots struct {
	mu    sync.Mutex
	once  sync.Once
	gate  chan struct{}
	last  domain.AppState
	saves int
}

func (s *slowSnapshots) LoadOrInit(ctx context.Context) (domain.AppState, error) {
	return domain.AppState{}, nil
}

func (s *slowSnapshots) Save(ctx context.Context, state domain.AppState) error {
	var stall bool
	s.once.Do(func() { stall = true })
	if stall {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = state
	s.saves++
	return nil
}

func (s *slowSnapshots) lastSaved() domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func TestActivityLogPrependAndCap(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, domain.AppState{})

	for i := 0; i < domain.MaxActivityLogEntries+25; i++ {
		err := store.AppendActivity(ctx, domain.ActivityLog{
			LogID:     fmt.Sprintf("log-%d", i),
			Timestamp: time.Now(),
			Action:    "Test",
		})
		require.NoError(t, err)
	}

	logs, err := store.ListActivity(ctx)
	require.NoError(t, err)
	assert.Len(t, logs, domain.MaxActivityLogEntries)
	// Newest entry sits at the head; the oldest 25 were dropped.
	assert.Equal(t, fmt.Sprintf("log-%d", domain.MaxActivityLogEntries+24), logs[0].LogID)
	assert.Equal(t, "log-25", logs[len(logs)-1].LogID)
}

func TestSaveTransactionPrepends(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, domain.AppState{})

	require.NoError(t, store.SaveTransaction(ctx, domain.Transaction{TransactionID: "first"}))
	require.NoError(t, store.SaveTransaction(ctx, domain.Transaction{TransactionID: "second"}))

	txns, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "second", txns[0].TransactionID)
}

func TestSlowFlushCannotOverwriteNewerSnapshot(t *testing.T) {
	ctx := context.Background()
	snapshots := &slowSnapshots{gate: make(chan struct{})}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := memstate.Open(ctx, snapshots, logger)
	require.NoError(t, err)

	require.NoError(t, store.SaveTransaction(ctx, domain.Transaction{TransactionID: "t-1"}))
	require.NoError(t, store.SaveTransaction(ctx, domain.Transaction{TransactionID: "t-2"}))
	close(snapshots.gate)

	// Whichever flush finishes last must carry both writes.
	assert.Eventually(t, func() bool {
		return len(snapshots.lastSaved().Transactions) == 2
	}, time.Second, 10*time.Millisecond)
}

func TestDuplicateUsernameRejected(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, domain.AppState{})

	require.NoError(t, store.SaveUser(ctx, domain.User{UserID: "u1", Username: "sam"}))
	err := store.SaveUser(ctx, domain.User{UserID: "u2", Username: "Sam"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestDeleteUserIsSoft(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, domain.AppState{})

	require.NoError(t, store.SaveUser(ctx, domain.User{UserID: "u1", Username: "sam"}))
	require.NoError(t, store.DeleteUser(ctx, "u1"))

	// Gone from username lookup, still reachable by id for audit purposes.
	_, err := store.FindUserByUsername(ctx, "sam")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	user, err := store.FindUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, user.DeletedAt)

	// The freed username can be taken again.
	assert.NoError(t, store.SaveUser(ctx, domain.User{UserID: "u2", Username: "sam"}))
}

func TestSnapshotIsDetached(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, domain.AppState{Categories: domain.SeedCategories()})

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	snap.Categories[0].Name = "mutated"
	snap.CompanyName = "mutated"

	fresh, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh.Categories[0].Name)
	assert.NotEqual(t, "mutated", fresh.CompanyName)
}

func TestUpdateMissingTransaction(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, domain.AppState{})

	err := store.UpdateTransaction(ctx, domain.Transaction{TransactionID: "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, store.DeleteTransaction(ctx, "ghost"), apperrors.ErrNotFound)
}
