package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmitrijs2005/travelmate/internal/client/i18n"
	"github.com/dmitrijs2005/travelmate/internal/client/models"
	"github.com/dmitrijs2005/travelmate/internal/client/session"
	"github.com/dmitrijs2005/travelmate/internal/logging"
)

// memRepo is an in-memory settings repository for view and command tests.
type memRepo struct {
	data map[string]string
}

func (m *memRepo) Get(_ context.Context, key string) (string, error) { return m.data[key], nil }
func (m *memRepo) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}
func (m *memRepo) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}
func (m *memRepo) List(_ context.Context) (map[string]string, error) { return m.data, nil }

func newTestStore(t *testing.T) (*session.Store, *memRepo) {
	t.Helper()
	repo := &memRepo{data: map[string]string{}}
	log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	return session.NewStore(repo, session.NewNotifier(), log), repo
}

func newTestLang(t *testing.T, store *session.Store) *i18n.Manager {
	t.Helper()
	bundle, err := i18n.LoadBundle()
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	return i18n.NewManager(context.Background(), bundle, store)
}

func newTestApp(t *testing.T) (*App, *memRepo) {
	t.Helper()
	store, repo := newTestStore(t)
	return &App{
		store:  store,
		lang:   newTestLang(t, store),
		reader: bufio.NewReader(strings.NewReader("")),
	}, repo
}

// stubInputs replaces the interactive input seams. Text prompts consume the
// given answers in order; the password prompt always returns pw and the
// confirm prompt always returns yes.
func stubInputs(t *testing.T, answers []string, pw []byte, yes bool) func() {
	t.Helper()
	origST, origGP, origGC := getSimpleText, getPassword, getConfirm

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", nil
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		return append([]byte(nil), pw...), nil
	}
	getConfirm = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		return yes, nil
	}

	return func() {
		getSimpleText = origST
		getPassword = origGP
		getConfirm = origGC
	}
}

// fakeAuthService records auth calls made by the command layer.
type fakeAuthService struct {
	calls []string

	loginEmail    string
	loginRemember bool
	loginErr      error

	resetMessage string
	resetCode    string
	resetEmail   string
	resetReqErr  error
	resetErr     error
}

func (f *fakeAuthService) Login(_ context.Context, email string, _ []byte, rememberMe bool) error {
	f.calls = append(f.calls, "login")
	f.loginEmail, f.loginRemember = email, rememberMe
	return f.loginErr
}
func (f *fakeAuthService) Register(_ context.Context, _, _, _ string, _, _ []byte) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeAuthService) RequestResetCode(_ context.Context, email string) (string, string, error) {
	f.calls = append(f.calls, "request-reset")
	f.resetEmail = email
	return f.resetMessage, f.resetCode, f.resetReqErr
}
func (f *fakeAuthService) ResetPassword(_ context.Context, email, _ string, _, _ []byte) error {
	f.calls = append(f.calls, "reset-password")
	f.resetEmail = email
	return f.resetErr
}
func (f *fakeAuthService) Logout(_ context.Context) error {
	f.calls = append(f.calls, "logout")
	return nil
}

// fakeAlbumService serves canned album lists.
type fakeAlbumService struct {
	calls     []string
	list      []models.Album
	fromCache bool
	listErr   error
	images    []models.AlbumImage

	lastAlbum string
	lastPath  string
}

func (f *fakeAlbumService) List(_ context.Context) ([]models.Album, bool, error) {
	f.calls = append(f.calls, "list")
	return f.list, f.fromCache, f.listErr
}
func (f *fakeAlbumService) Create(_ context.Context, _ string) error {
	f.calls = append(f.calls, "create")
	return nil
}
func (f *fakeAlbumService) Delete(_ context.Context, _ string) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeAlbumService) ListImages(_ context.Context, album string) ([]models.AlbumImage, error) {
	f.calls = append(f.calls, "list-images")
	f.lastAlbum = album
	return f.images, nil
}
func (f *fakeAlbumService) AddImage(_ context.Context, album, path string) error {
	f.calls = append(f.calls, "add-image")
	f.lastAlbum, f.lastPath = album, path
	return nil
}
func (f *fakeAlbumService) DeleteImage(_ context.Context, _, _ string) error {
	f.calls = append(f.calls, "delete-image")
	return nil
}
