package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"time"

	"github.com/pvukovic/mailpilot/internal/client/client"
	"github.com/pvukovic/mailpilot/internal/client/config"
	"github.com/pvukovic/mailpilot/internal/client/panels"
	"github.com/pvukovic/mailpilot/internal/client/routing"
	"github.com/pvukovic/mailpilot/internal/client/services"
	"github.com/pvukovic/mailpilot/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode reflects the last known reachability of the backend.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	apiClient client.Client
	session   services.SessionService
	guard     *routing.Guard
	settings  *panels.SettingsPanel
	emails    *panels.EmailPanel
	reader    *bufio.Reader

	// mode is written by the status watcher goroutine and read by the REPL.
	modeMu sync.Mutex
	mode   Mode
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, repos.Credentials, logger)
	session := services.NewSessionService(apiClient, repos.Credentials, logger)

	return &App{
		config:    c,
		log:       logger,
		db:        db,
		apiClient: apiClient,
		session:   session,
		guard:     routing.NewGuard(session),
		settings:  panels.NewSettingsPanel(apiClient, logger),
		emails:    panels.NewEmailPanel(apiClient, logger),
		mode:      ModeOnline,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.mode != mode {
		a.mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) currentMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

// Run bootstraps the persisted session, starts the reachability watcher,
// and hands control to the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	restored, err := a.session.Bootstrap(ctx)
	if err != nil {
		log.Printf("session bootstrap failed: %v", err)
	}
	if restored {
		printlnFn("Welcome back! You are logged in.")
	}

	watcherCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watcherCtx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.promptStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) Close() {
	_ = a.apiClient.Close()
	_ = a.db.Close()
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

func (a *App) promptStatus() string {
	state := "anonymous"
	if a.isLoggedIn(context.Background()) {
		state = "authenticated"
	}
	return state + "/" + string(a.currentMode())
}

// StartOnlineStatusWatcher periodically probes server liveness and flips
// Mode accordingly. It returns when ctx is cancelled.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.apiClient.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
