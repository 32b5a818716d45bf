// Package memstate holds the live application state. The whole aggregate
// lives in memory behind one lock and is flushed to the snapshot repository
// after every mutation, so readers always see a consistent ledger and a crash
// loses at most the last write.
package memstate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/finvue/finvue_backend/internal/apperrors"
	"github.com/finvue/finvue_backend/internal/core/domain"
	portsrepo "github.com/finvue/finvue_backend/internal/core/ports/repositories"
)

// saveTimeout bounds a background snapshot flush.
const saveTimeout = 10 * time.Second

// Store owns the aggregate and implements every repository port over it.
type Store struct {
	mu        sync.RWMutex
	state     domain.AppState
	snapshots portsrepo.SnapshotRepository
	logger    *slog.Logger

	flushMu sync.Mutex
	version uint64 // guarded by mu
	flushed uint64 // guarded by flushMu
}

// Open loads the persisted snapshot (or a bootstrapped initial state) and
// returns the store wrapped around it.
func Open(ctx context.Context, snapshots portsrepo.SnapshotRepository, logger *slog.Logger) (*Store, error) {
	state, err := snapshots.LoadOrInit(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state snapshot: %w", err)
	}
	return &Store{state: state, snapshots: snapshots, logger: logger}, nil
}

// Repositories exposes the store behind the repository ports.
func (s *Store) Repositories() portsrepo.RepositoryContainer {
	return portsrepo.RepositoryContainer{
		Transaction: s,
		User:        s,
		Activity:    s,
		Settings:    s,
		Category:    s,
		State:       s,
	}
}

var (
	_ portsrepo.TransactionRepository = (*Store)(nil)
	_ portsrepo.UserRepository        = (*Store)(nil)
	_ portsrepo.ActivityLogRepository = (*Store)(nil)
	_ portsrepo.SettingsRepository    = (*Store)(nil)
	_ portsrepo.CategoryRepository    = (*Store)(nil)
	_ portsrepo.StateReader           = (*Store)(nil)
)

// persistLocked schedules a best-effort snapshot flush. Callers must hold the
// write lock; the flush itself runs on a detached context so a cancelled
// request cannot drop the write. Each flush carries the version of the state
// it cloned and is skipped when a newer version already reached the
// repository, so a slow older flush can never overwrite a newer snapshot.
func (s *Store) persistLocked() {
	s.version++
	version := s.version
	snapshot := cloneState(s.state)
	go func() {
		s.flushMu.Lock()
		defer s.flushMu.Unlock()
		if version <= s.flushed {
			return
		}
		s.flushed = version
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := s.snapshots.Save(ctx, snapshot); err != nil {
			s.logger.Error("failed to persist state snapshot", slog.String("error", err.Error()))
		}
	}()
}

// --- transactions ---

func (s *Store) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.state.Transactions {
		if t.TransactionID == transactionID {
			txn := t
			return &txn, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Transaction, len(s.state.Transactions))
	copy(out, s.state.Transactions)
	return out, nil
}

func (s *Store) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Newest first, matching how listings are served.
	s.state.Transactions = append([]domain.Transaction{txn}, s.state.Transactions...)
	s.persistLocked()
	return nil
}

func (s *Store) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Transactions {
		if s.state.Transactions[i].TransactionID == txn.TransactionID {
			s.state.Transactions[i] = txn
			s.persistLocked()
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *Store) DeleteTransaction(ctx context.Context, transactionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Transactions {
		if s.state.Transactions[i].TransactionID == transactionID {
			s.state.Transactions = append(s.state.Transactions[:i], s.state.Transactions[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// --- users ---

func (s *Store) SaveUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.state.Users {
		if u.DeletedAt == nil && strings.EqualFold(u.Username, user.Username) {
			return fmt.Errorf("%w: username %q", apperrors.ErrDuplicate, user.Username)
		}
	}
	s.state.Users = append(s.state.Users, user)
	s.persistLocked()
	return nil
}

func (s *Store) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.state.Users {
		if u.UserID == userID {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.state.Users {
		if u.DeletedAt == nil && strings.EqualFold(u.Username, username) {
			user := u
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) UpdateUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Users {
		if s.state.Users[i].UserID == user.UserID {
			s.state.Users[i] = user
			s.persistLocked()
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.state.Users {
		if s.state.Users[i].UserID == userID {
			now := time.Now()
			s.state.Users[i].DeletedAt = &now
			s.persistLocked()
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, len(s.state.Users))
	copy(out, s.state.Users)
	return out, nil
}

// --- activity log ---

func (s *Store) AppendActivity(ctx context.Context, entry domain.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	logs := append([]domain.ActivityLog{entry}, s.state.ActivityLogs...)
	if len(logs) > domain.MaxActivityLogEntries {
		logs = logs[:domain.MaxActivityLogEntries]
	}
	s.state.ActivityLogs = logs
	s.persistLocked()
	return nil
}

func (s *Store) ListActivity(ctx context.Context) ([]domain.ActivityLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ActivityLog, len(s.state.ActivityLogs))
	copy(out, s.state.ActivityLogs)
	return out, nil
}

// --- settings ---

func (s *Store) GetSettings(ctx context.Context) (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Settings{
		CompanyName: s.state.CompanyName,
		CompanyLogo: s.state.CompanyLogo,
		SheetURL:    s.state.SheetURL,
		LastSynced:  s.state.LastSynced,
		DarkMode:    s.state.DarkMode,
	}, nil
}

func (s *Store) UpdateSettings(ctx context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CompanyName = settings.CompanyName
	s.state.CompanyLogo = settings.CompanyLogo
	s.state.SheetURL = settings.SheetURL
	s.state.LastSynced = settings.LastSynced
	s.state.DarkMode = settings.DarkMode
	s.persistLocked()
	return nil
}

// --- categories ---

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, len(s.state.Categories))
	copy(out, s.state.Categories)
	return out, nil
}

func (s *Store) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.state.Categories {
		if strings.EqualFold(c.Name, name) {
			cat := c
			return &cat, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) SaveCategory(ctx context.Context, category domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.state.Categories {
		if strings.EqualFold(c.Name, category.Name) {
			return fmt.Errorf("%w: category %q", apperrors.ErrDuplicate, category.Name)
		}
	}
	s.state.Categories = append(s.state.Categories, category)
	s.persistLocked()
	return nil
}

// --- snapshot ---

func (s *Store) Snapshot(ctx context.Context) (domain.AppState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state), nil
}

// cloneState deep-copies the aggregate so callers can read it lock-free.
func cloneState(state domain.AppState) domain.AppState {
	out := state

	out.Transactions = make([]domain.Transaction, len(state.Transactions))
	copy(out.Transactions, state.Transactions)

	out.Users = make([]domain.User, len(state.Users))
	copy(out.Users, state.Users)
	for i := range out.Users {
		if state.Users[i].DeletedAt != nil {
			deleted := *state.Users[i].DeletedAt
			out.Users[i].DeletedAt = &deleted
		}
	}

	out.ActivityLogs = make([]domain.ActivityLog, len(state.ActivityLogs))
	copy(out.ActivityLogs, state.ActivityLogs)

	out.Categories = make([]domain.Category, len(state.Categories))
	copy(out.Categories, state.Categories)
	for i := range out.Categories {
		if len(state.Categories[i].SubcategoryOptions) > 0 {
			opts := make([]string, len(state.Categories[i].SubcategoryOptions))
			copy(opts, state.Categories[i].SubcategoryOptions)
			out.Categories[i].SubcategoryOptions = opts
		}
	}

	if state.LastSynced != nil {
		synced := *state.LastSynced
		out.LastSynced = &synced
	}
	return out
}
