package notification

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-inventory-agent/internal/domain"
)

// maxStored bounds the history; older entries fall off the end.
const maxStored = 50

// Store is a bounded, deduplicated, file-persisted notification history,
// ordered newest-first by insertion. It is the only mutable state shared
// between the agent's worker and concurrent readers, so every access goes
// through the mutex.
type Store struct {
	mu    sync.Mutex
	path  string
	items []domain.Notification
}

// NewStore creates the store and loads any existing history from path.
// A missing or unreadable file starts the store empty; that is not an error
// at construction time.
func NewStore(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Error("could not read notification history", "path", s.path, "err", err)
		}
		return
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		slog.Error("corrupt notification history, starting empty", "path", s.path, "err", err)
		s.items = nil
		return
	}
	slog.Info("loaded notification history", "path", s.path, "count", len(s.items))
}

// Merge folds incoming notifications into the store and returns how many were
// actually added. An incoming notification is a duplicate — and dropped — when
// an existing entry carries the same dedup key and a timestamp on the same
// calendar day as now. New entries get the dedup key as id, a timestamp
// defaulting to now, and go to the front. The store is then truncated to the
// most recent entries and persisted if anything changed; a persistence failure
// is logged and does not roll back the in-memory state.
func (s *Store) Merge(now time.Time, incoming []domain.Notification) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, n := range incoming {
		key := n.DedupKey(now)

		exists := false
		for _, existing := range s.items {
			if existing.NotificationID == key && sameDay(existing.Timestamp, now) {
				exists = true
				break
			}
		}
		if exists {
			continue
		}

		n.NotificationID = key
		if n.Timestamp.IsZero() {
			n.Timestamp = now
		}
		s.items = append([]domain.Notification{n}, s.items...)
		added++
	}

	if len(s.items) > maxStored {
		s.items = s.items[:maxStored]
	}

	if added > 0 {
		if err := s.persist(); err != nil {
			slog.Error("could not persist notifications", "path", s.path, "err", err)
		}
	}
	return added
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit < 0 || limit > len(s.items) {
		limit = len(s.items)
	}
	out := make([]domain.Notification, limit)
	copy(out, s.items[:limit])
	return out
}

// Len reports the current history size.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// persist rewrites the whole history. Write-to-temp-then-rename keeps a crash
// mid-write from corrupting the previous file. Caller holds the mutex.
func (s *Store) persist() error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("marshal notifications: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
