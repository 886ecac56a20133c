package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/dmitrijs2005/travelmate/internal/client/api"
	"github.com/dmitrijs2005/travelmate/internal/client/config"
	"github.com/dmitrijs2005/travelmate/internal/client/i18n"
	"github.com/dmitrijs2005/travelmate/internal/client/services"
	"github.com/dmitrijs2005/travelmate/internal/client/session"
	"github.com/dmitrijs2005/travelmate/internal/client/storage"
	"github.com/dmitrijs2005/travelmate/internal/logging"
)

type App struct {
	config *config.Config
	db     *sql.DB
	store  *session.Store
	lang   *i18n.Manager
	menu   *MenuView

	authService  services.AuthService
	albumService services.AlbumService
	travel       services.TravelService
	chat         *services.ChatSession

	reader *bufio.Reader
	log    logging.Logger
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	db, repos, err := storage.InitDatabase(ctx, c.DatabaseFile)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	store := session.NewStore(repos.Settings, session.NewNotifier(), logger)

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, func() string {
		return store.Get(ctx, session.KeyAuthToken)
	})

	bundle, err := i18n.LoadBundle()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	lang := i18n.NewManager(ctx, bundle, store)

	a := &App{
		config:       c,
		db:           db,
		store:        store,
		lang:         lang,
		authService:  services.NewAuthService(apiClient, store),
		albumService: services.NewAlbumService(apiClient, repos.Albums, logger),
		travel:       services.NewTravelService(apiClient),
		chat:         services.NewChatSession(apiClient),
		reader:       bufio.NewReader(os.Stdin),
		log:          logger,
	}
	a.menu = NewMenuView(store, lang, os.Stdout)
	return a, nil
}

// Run mounts the menu, starts the external-change watcher, and enters the
// REPL. It blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	unmount := a.menu.Mount(ctx)
	defer unmount()

	go a.store.StartWatcher(ctx, a.config.WatchInterval)

	a.menu.Repaint(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, scanner)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.store.Snapshot(ctx).LoggedIn()
}

func (a *App) getStatus(ctx context.Context) string {
	snap := a.store.Snapshot(ctx)
	if !snap.LoggedIn() {
		return a.lang.Current()
	}
	return snap.Email + " " + a.lang.Current()
}
