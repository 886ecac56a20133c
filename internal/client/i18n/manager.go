package i18n

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/travelmate/internal/client/session"
	"golang.org/x/text/language"
)

// ErrUnknownLocale is returned by SetLanguage for a code the bundle does not
// carry. The current selection stays untouched.
var ErrUnknownLocale = errors.New("unknown locale")

// Manager owns the current locale. It is initialized from the session store,
// persists every change back to it, and re-renders the registered views when
// the selection changes.
type Manager struct {
	bundle *Bundle
	store  *session.Store

	mu      sync.Mutex
	current string
	next    int
	views   map[int]func()
}

// NewManager derives the starting locale from the store, falling back to
// DefaultLocale when the persisted value is absent or unknown.
func NewManager(ctx context.Context, bundle *Bundle, store *session.Store) *Manager {
	current := bundle.resolve(store.Get(ctx, session.KeyAppLanguage))
	return &Manager{
		bundle:  bundle,
		store:   store,
		current: current,
		views:   make(map[int]func()),
	}
}

// resolve maps a persisted value to a supported locale, tolerating region
// subtags ("vi-VN") and falling back to the default.
func (b *Bundle) resolve(code string) string {
	if code == "" {
		return DefaultLocale
	}
	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLocale
	}
	base, _ := tag.Base()
	if b.Has(base.String()) {
		return base.String()
	}
	return DefaultLocale
}

// Current returns the active locale code.
func (m *Manager) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Supported lists the locale codes a user may switch to.
func (m *Manager) Supported() []string { return m.bundle.Supported() }

// T translates key in the current locale, degrading to the key itself when
// the dictionary has no entry for it.
func (m *Manager) T(key string) string {
	return m.bundle.T(m.Current(), key)
}

// SetLanguage switches the locale. Unknown codes are rejected without
// mutating anything; valid codes are persisted and every registered view is
// re-rendered.
func (m *Manager) SetLanguage(ctx context.Context, code string) error {
	tag, err := language.Parse(code)
	if err != nil {
		return ErrUnknownLocale
	}
	base, _ := tag.Base()
	locale := base.String()
	if !m.bundle.Has(locale) {
		return ErrUnknownLocale
	}

	m.mu.Lock()
	m.current = locale
	m.mu.Unlock()

	m.store.Set(ctx, session.KeyAppLanguage, locale)
	m.Apply()
	return nil
}

// Register adds a view render callback and returns its removal function.
// Views render from current state only, which keeps Apply idempotent.
func (m *Manager) Register(render func()) (unregister func()) {
	m.mu.Lock()
	id := m.next
	m.next++
	m.views[id] = render
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.views, id)
		m.mu.Unlock()
	}
}

// Apply re-renders every registered view with the current locale. Calling it
// repeatedly without a state change produces identical output.
func (m *Manager) Apply() {
	m.mu.Lock()
	views := make([]func(), 0, len(m.views))
	for _, v := range m.views {
		views = append(views, v)
	}
	m.mu.Unlock()

	for _, render := range views {
		render()
	}
}
