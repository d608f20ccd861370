// Package store persists per-user API credentials and the linked game UID.
// It owns a single in-memory table backed by a flat JSON file, written
// wholesale on every mutation. Invariants (a record exists only after its
// cookie validated against the account API) are enforced here; callers never
// touch the table directly.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/paimonbot/paimonbot/internal/hoyo"
	"github.com/paimonbot/paimonbot/internal/model"
)

// Store errors.
var (
	// ErrNoRecord means the user has never set a cookie.
	ErrNoRecord = errors.New("user record not found")
	// ErrNoCookie means a record exists without a cookie. Should not occur
	// given the creation invariant, but checked defensively.
	ErrNoCookie = errors.New("cookie not set")
	// ErrNoUID means the operation needs a game UID and none is assigned.
	ErrNoUID = errors.New("game uid not set")
	// ErrNoGameAccount means the cookie validated but resolves to zero
	// bound game accounts.
	ErrNoGameAccount = errors.New("no game accounts bound to this cookie")
)

// ListAccountsFunc confirms a candidate cookie against the account-listing
// API and returns the game accounts it resolves to.
type ListAccountsFunc func(ctx context.Context, cookie string) ([]hoyo.Account, error)

// SetCookieResult reports what SetCookie did.
type SetCookieResult struct {
	// Accounts bound to the validated cookie.
	Accounts []hoyo.Account
	// UID is non-empty when exactly one full-length account was bound and
	// the store auto-assigned it.
	UID string
}

// Store is the process-wide credential table. Safe for concurrent use;
// the mutex also serializes the mutate-plus-persist step so wholesale file
// writes never interleave.
type Store struct {
	mu           sync.RWMutex
	path         string
	listAccounts ListAccountsFunc
	logger       *slog.Logger
	records      map[string]*model.UserRecord
}

// New opens the store at path, loading any existing data file. An absent or
// corrupt file starts an empty store rather than failing.
func New(path string, listAccounts ListAccountsFunc, logger *slog.Logger) *Store {
	s := &Store{
		path:         path,
		listAccounts: listAccounts,
		logger:       logger.With("component", "store"),
		records:      make(map[string]*model.UserRecord),
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First run.
	case err != nil:
		s.logger.Warn("failed to read user data file, starting empty", "path", path, "error", err)
	default:
		if err := json.Unmarshal(data, &s.records); err != nil {
			s.logger.Warn("corrupt user data file, starting empty", "path", path, "error", err)
			s.records = make(map[string]*model.UserRecord)
		}
	}
	return s
}

// SetCookie validates and stores a cookie for userID. Malformed input is
// rejected without any network call. A syntactically valid cookie is
// confirmed against the account API: zero bound accounts rejects the cookie,
// exactly one full-length account auto-assigns its UID, several leave the
// UID choice to the caller.
func (s *Store) SetCookie(ctx context.Context, userID, raw string) (*SetCookieResult, error) {
	cookie, err := hoyo.NormalizeCookie(raw)
	if err != nil {
		return nil, err
	}

	accounts, err := s.listAccounts(ctx, cookie)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrNoGameAccount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[userID]
	if !ok {
		rec = &model.UserRecord{}
		s.records[userID] = rec
	}
	rec.Cookie = cookie
	rec.LastUsedAt = time.Now().UTC()

	result := &SetCookieResult{Accounts: accounts}
	if len(accounts) == 1 && len(accounts[0].UID) == 9 {
		rec.UID = accounts[0].UID
		result.UID = rec.UID
	}

	s.saveLocked()
	return result, nil
}

// SetUID assigns a game UID to an existing record, overwriting any previous
// value. The cookie must have been set first.
func (s *Store) SetUID(userID, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[userID]
	if !ok {
		return ErrNoRecord
	}
	rec.UID = uid
	rec.LastUsedAt = time.Now().UTC()
	s.saveLocked()
	return nil
}

// GetUID returns the assigned game UID, touching the record's usage time.
func (s *Store) GetUID(userID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[userID]
	if !ok || rec.UID == "" {
		return "", false
	}
	rec.LastUsedAt = time.Now().UTC()
	return rec.UID, true
}

// Check validates that userID has everything the caller needs. It returns
// ErrNoRecord, ErrNoCookie or (when requireUID) ErrNoUID. On success the
// record's usage time is updated unless touch is false; scheduled callers
// suppress the touch so background polls don't extend a dormant user's
// retention.
func (s *Store) Check(userID string, requireUID, touch bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[userID]
	if !ok {
		return ErrNoRecord
	}
	if rec.Cookie == "" {
		return ErrNoCookie
	}
	if requireUID && rec.UID == "" {
		return ErrNoUID
	}
	if touch {
		rec.LastUsedAt = time.Now().UTC()
	}
	return nil
}

// Get returns a copy of the user's record without touching it.
func (s *Store) Get(userID string) (model.UserRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[userID]
	if !ok {
		return model.UserRecord{}, false
	}
	return *rec, true
}

// UserIDs returns a snapshot of every stored user id.
func (s *Store) UserIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Delete removes the user's record and usage tracking. Deleting an unknown
// user returns ErrNoRecord without a persistence write.
func (s *Store) Delete(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[userID]; !ok {
		return ErrNoRecord
	}
	delete(s.records, userID)
	s.saveLocked()
	return nil
}

// SweepExpired removes every record unused for strictly longer than
// retention as of now and returns the count removed. It iterates a snapshot
// of the keys so deletion during the scan is safe.
func (s *Store) SweepExpired(now time.Time, retention time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}

	removed := 0
	for _, id := range ids {
		if s.records[id].ExpiredAt(now, retention) {
			delete(s.records, id)
			removed++
		}
	}
	if removed > 0 {
		s.saveLocked()
	}
	return removed
}

// saveLocked serializes the whole table to the data file. Failures are
// logged, not returned: the in-memory state is already correct even if the
// durable copy temporarily lags. Callers must hold the write lock.
func (s *Store) saveLocked() {
	data, err := json.Marshal(s.records)
	if err != nil {
		s.logger.Error("failed to encode user data", "error", err)
		return
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.logger.Error("failed to create data directory", "path", dir, "error", err)
			return
		}
	}

	// Write-then-rename so a crash mid-write never corrupts the file.
	tmp := fmt.Sprintf("%s.tmp", s.path)
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		s.logger.Error("failed to persist user data", "path", s.path, "error", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Error("failed to replace user data file", "path", s.path, "error", err)
	}
}
