// Package session owns the client's persisted session and locale state and
// the change notifications that keep independently mounted views in sync
// with it.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/travelmate/internal/client/repositories/settings"
	"github.com/dmitrijs2005/travelmate/internal/logging"
)

// Store keys. The store is the single owner of these values; views hold only
// transient render-time copies.
const (
	KeyAuthToken   = "authToken"
	KeyUserEmail   = "userEmail"
	KeySavedEmail  = "savedEmail"
	KeyUserAvatar  = "userAvatar"
	KeyUserName    = "userName"
	KeyAppLanguage = "appLanguage"
)

// Session is a read-only snapshot of the persisted state. A non-empty Token
// is the only thing that makes the client "logged in"; no further validation
// happens client-side.
type Session struct {
	Token      string
	Email      string
	SavedEmail string
	Avatar     string
	Name       string
	Language   string
}

// LoggedIn reports whether the snapshot carries an auth token.
func (s Session) LoggedIn() bool { return s.Token != "" }

// Store wraps the settings repository with change notifications. Persistence
// failures degrade silently: the value simply does not survive a restart,
// and reads fall back to absent. Nothing at this layer is fatal.
type Store struct {
	repo     settings.Repository
	notifier *Notifier
	log      logging.Logger

	mu   sync.Mutex
	seen map[string]string // last values observed by this process
}

func NewStore(repo settings.Repository, notifier *Notifier, log logging.Logger) *Store {
	return &Store{
		repo:     repo,
		notifier: notifier,
		log:      log,
		seen:     make(map[string]string),
	}
}

// Get returns the stored value for key, or "" when absent or unreadable.
func (s *Store) Get(ctx context.Context, key string) string {
	v, err := s.repo.Get(ctx, key)
	if err != nil {
		s.log.Warn(ctx, "settings read failed", "key", key, "error", err)
		return ""
	}
	return v
}

// Set persists value under key and notifies subscribers. A write failure is
// logged and swallowed; no notification goes out for a value that was not
// stored.
func (s *Store) Set(ctx context.Context, key, value string) {
	if err := s.repo.Set(ctx, key, value); err != nil {
		s.log.Warn(ctx, "settings write failed", "key", key, "error", err)
		return
	}
	s.markSeen(key, value)
	s.notifier.Broadcast(Change{Key: key})
}

// Remove deletes key and notifies subscribers.
func (s *Store) Remove(ctx context.Context, key string) {
	if err := s.repo.Delete(ctx, key); err != nil {
		s.log.Warn(ctx, "settings delete failed", "key", key, "error", err)
		return
	}
	s.markSeen(key, "")
	s.notifier.Broadcast(Change{Key: key})
}

// Snapshot reads the full session state in one go, for render input.
func (s *Store) Snapshot(ctx context.Context) Session {
	return Session{
		Token:      s.Get(ctx, KeyAuthToken),
		Email:      s.Get(ctx, KeyUserEmail),
		SavedEmail: s.Get(ctx, KeySavedEmail),
		Avatar:     s.Get(ctx, KeyUserAvatar),
		Name:       s.Get(ctx, KeyUserName),
		Language:   s.Get(ctx, KeyAppLanguage),
	}
}

// Notifier exposes the store's change feed for subscription.
func (s *Store) Notifier() *Notifier { return s.notifier }

func (s *Store) markSeen(key, value string) {
	s.mu.Lock()
	if value == "" {
		delete(s.seen, key)
	} else {
		s.seen[key] = value
	}
	s.mu.Unlock()
}
