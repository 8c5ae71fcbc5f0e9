package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/api"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/config"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/loaders"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/render"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/services"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/session"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/storage"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/view"
	"github.com/dmitrijs2005/kitchenkeeper/internal/filex"
	"github.com/dmitrijs2005/kitchenkeeper/internal/logging"
)

type App struct {
	config      *config.Config
	db          *sql.DB
	api         *api.Client
	authService services.AuthService
	ctrl        *view.Controller
	loaders     *loaders.Loaders
	render      render.Renderer
	log         logging.Logger

	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
	password func() ([]byte, error)
}

type Option func(*App)

// WithIO replaces stdin/stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.reader = bufio.NewReader(in)
		a.out = out
	}
}

// WithClock overrides the clock used for expiry dates and exports.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithPasswordPrompt replaces the no-echo terminal password prompt.
func WithPasswordPrompt(fn func() ([]byte, error)) Option {
	return func(a *App) { a.password = fn }
}

// NewApp opens the local session database, restores the stored session and
// wires the API client, loaders and renderer.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, opts ...Option) (*App, error) {
	a := &App{
		config: c,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		now:    time.Now,
	}
	for _, o := range opts {
		o(a)
	}
	if a.password == nil {
		a.password = func() ([]byte, error) { return GetPassword(a.out) }
	}

	dsn := c.DatabasePath
	if dsn != ":memory:" {
		path, err := filex.PrepareFile(dsn)
		if err != nil {
			return nil, err
		}
		dsn = path
	}
	db, err := storage.Open(ctx, dsn)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}
	a.db = db

	store := session.NewStore(db, log)
	apiClient, err := api.New(c.ServerBaseURL, store, log, api.WithTimeout(c.RequestTimeout))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.api = apiClient
	a.authService = services.NewAuthService(apiClient, store)

	r, err := render.New(c.RenderFormat)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.render = r

	sess, err := a.authService.Restore(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if sess != nil {
		a.ctrl = view.NewController(true, sess.User.Name)
	} else {
		a.ctrl = view.NewController(false, "")
	}

	a.loaders = loaders.New(apiClient, a.ctrl, r, a.out, log, loaders.WithClock(func() time.Time { return a.now() }))
	apiClient.SetUnauthorizedHandler(a.onUnauthorized)
	return a, nil
}

// onUnauthorized runs on any 401: the session is dropped and the user is
// sent back to the login view.
func (a *App) onUnauthorized(ctx context.Context) {
	if err := a.authService.Logout(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session", "error", err)
	}
	if a.ctrl.LoggedIn() {
		a.println("Your session has expired. Please log in again.")
	}
	a.ctrl.Logout()
}

// Run shows the banner and the first view, then runs the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printBanner(a.out)
	if a.isLoggedIn() {
		_ = a.Dashboard(ctx)
	} else {
		a.showLoginForm()
	}
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.ctrl.LoggedIn()
}

func (a *App) status() string {
	if !a.ctrl.LoggedIn() {
		return a.ctrl.LoginMode().String()
	}
	return fmt.Sprintf("%s@%s", a.ctrl.UserName(), a.ctrl.Page())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) confirm(prompt string) bool {
	return Confirm(a.reader, prompt, a.out)
}
