package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/travelmate/internal/client/i18n"
	"github.com/dmitrijs2005/travelmate/internal/client/session"
)

// iconSlot is one place in the menu that shows either a default glyph or,
// once the user has an avatar, the avatar marker. The swap happens at most
// once per slot; later avatar writes keep the already swapped marker.
type iconSlot struct {
	glyph    string
	replaced bool
}

func (s *iconSlot) applyAvatar() {
	if s.replaced {
		return
	}
	s.glyph = "[avatar]"
	s.replaced = true
}

// menuKeys are the store keys whose changes require a menu repaint.
var menuKeys = map[string]bool{
	session.KeyAuthToken:   true,
	session.KeyUserEmail:   true,
	session.KeyUserAvatar:  true,
	session.KeyUserName:    true,
	session.KeyAppLanguage: true,
}

// MenuView is the persistent user-menu header. It renders purely from the
// current session snapshot and the current locale, so repainting twice in a
// row produces identical output. Whether the user is logged in is decided by
// token presence alone.
type MenuView struct {
	store *session.Store
	lang  *i18n.Manager
	w     io.Writer

	mu     sync.Mutex
	header *iconSlot
	drawer *iconSlot
}

func NewMenuView(store *session.Store, lang *i18n.Manager, w io.Writer) *MenuView {
	return &MenuView{
		store:  store,
		lang:   lang,
		w:      w,
		header: &iconSlot{glyph: "[menu]"},
		drawer: &iconSlot{glyph: "[user]"},
	}
}

// Mount subscribes the view to session changes and language switches and
// returns a function that detaches it again.
func (v *MenuView) Mount(ctx context.Context) (unmount func()) {
	unsubStore := v.store.Notifier().Subscribe(func(c session.Change) {
		if menuKeys[c.Key] {
			v.Repaint(ctx)
		}
	})
	unsubLang := v.lang.Register(func() { v.Repaint(ctx) })
	return func() {
		unsubStore()
		unsubLang()
	}
}

// Repaint redraws the menu from current state. The greeting is always
// localized, logged in or not. The email line stays empty when no email is
// stored.
func (v *MenuView) Repaint(ctx context.Context) {
	snap := v.store.Snapshot(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if snap.Avatar != "" {
		v.header.applyAvatar()
		v.drawer.applyAvatar()
	}

	fmt.Fprintf(v.w, "%s %s %s\n", v.header.glyph, v.lang.T("hello"), snap.Email)

	if snap.LoggedIn() {
		fmt.Fprintf(v.w, "%s %s | %s | %s\n",
			v.drawer.glyph, v.lang.T("profile"), v.lang.T("album"), v.lang.T("logout"))
	} else {
		fmt.Fprintf(v.w, "%s %s | %s\n",
			v.drawer.glyph, v.lang.T("login"), v.lang.T("signup"))
	}
}
