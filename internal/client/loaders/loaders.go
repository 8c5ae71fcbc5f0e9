package loaders

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/api"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/render"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/view"
	"github.com/dmitrijs2005/kitchenkeeper/internal/logging"
)

const (
	// DashboardPageSize is the page size of both dashboard fetches.
	DashboardPageSize = 5
	// DefaultExpiringDays is the window of the expiring report.
	DefaultExpiringDays = 3
	// UnknownError is shown for failed writes without a server detail.
	UnknownError = "unknown error"
)

// ErrStale is returned when a result arrived after the user navigated away.
var ErrStale = errors.New("stale view result discarded")

type RecipeAPI interface {
	ListRecipes(ctx context.Context, q api.RecipeQuery) (models.Page[models.Recipe], error)
	GetRecipe(ctx context.Context, id int64) (models.Recipe, error)
	CreateRecipe(ctx context.Context, r models.NewRecipe) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, id int64, u models.RecipeUpdate) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
}

type PantryAPI interface {
	ListPantry(ctx context.Context, q api.PantryQuery) (models.Page[models.PantryItem], error)
	CreatePantryItem(ctx context.Context, item models.NewPantryItem) (models.PantryItem, error)
	UpdatePantryItem(ctx context.Context, id int64, u models.PantryUpdate) (models.PantryItem, error)
	DeletePantryItem(ctx context.Context, id int64) error
}

type API interface {
	RecipeAPI
	PantryAPI
}

// Confirm asks the user to confirm a destructive action.
type Confirm func(prompt string) bool

type Option func(*Loaders)

// WithClock overrides the clock used to classify expiry dates.
func WithClock(now func() time.Time) Option {
	return func(l *Loaders) { l.now = now }
}

type Loaders struct {
	api    API
	ctrl   *view.Controller
	render render.Renderer
	out    io.Writer
	log    logging.Logger
	now    func() time.Time
}

func New(a API, ctrl *view.Controller, r render.Renderer, out io.Writer, log logging.Logger, opts ...Option) *Loaders {
	l := &Loaders{api: a, ctrl: ctrl, render: r, out: out, log: log, now: time.Now}
	for _, o := range opts {
		o(l)
	}
	return l
}

func (l *Loaders) today() models.Date {
	return models.DateOf(l.now())
}

// apply runs draw if t is still the current ticket.
func (l *Loaders) apply(ctx context.Context, t view.Ticket, what string, draw func() error) error {
	if !l.ctrl.Current(t) {
		l.log.Debug(ctx, "discarding stale result", "view", what, "ticket", string(t))
		return ErrStale
	}
	return draw()
}

// readFailed logs a failed read. The view is left as it was.
func (l *Loaders) readFailed(ctx context.Context, what string, err error) error {
	l.log.Error(ctx, "failed to load", "view", what, "error", err)
	return fmt.Errorf("load %s: %w", what, err)
}

// Dashboard fetches the first recipe and pantry pages concurrently and renders
// the counters once both have arrived.
func (l *Loaders) Dashboard(ctx context.Context, t view.Ticket) error {
	var (
		recipes models.Page[models.Recipe]
		pantry  models.Page[models.PantryItem]
	)
	page := models.PageRequest{Page: 0, Size: DashboardPageSize}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recipes, err = l.api.ListRecipes(gctx, api.RecipeQuery{PageRequest: page})
		return err
	})
	g.Go(func() error {
		var err error
		pantry, err = l.api.ListPantry(gctx, api.PantryQuery{PageRequest: page})
		return err
	})
	if err := g.Wait(); err != nil {
		return l.readFailed(ctx, "dashboard", err)
	}

	return l.apply(ctx, t, "dashboard", func() error {
		d := render.BuildDashboard(l.ctrl.UserName(), recipes, pantry, l.today())
		return l.render.Dashboard(l.out, d)
	})
}

// Recipes renders the first page of recipes.
func (l *Loaders) Recipes(ctx context.Context, t view.Ticket) error {
	return l.SearchRecipes(ctx, t, api.RecipeQuery{})
}

// SearchRecipes renders the first page of recipes matching q.
func (l *Loaders) SearchRecipes(ctx context.Context, t view.Ticket, q api.RecipeQuery) error {
	page, err := l.api.ListRecipes(ctx, q)
	if err != nil {
		return l.readFailed(ctx, "recipes", err)
	}
	return l.apply(ctx, t, "recipes", func() error {
		return l.render.Recipes(l.out, render.BuildRecipeCards(page.Content))
	})
}

// Recipe renders a single recipe card.
func (l *Loaders) Recipe(ctx context.Context, t view.Ticket, id int64) error {
	r, err := l.api.GetRecipe(ctx, id)
	if err != nil {
		return l.readFailed(ctx, "recipe", err)
	}
	return l.apply(ctx, t, "recipe", func() error {
		return l.render.Recipe(l.out, render.BuildRecipeCard(r))
	})
}

// Pantry renders the first page of pantry items.
func (l *Loaders) Pantry(ctx context.Context, t view.Ticket) error {
	return l.pantry(ctx, t, "pantry", api.PantryQuery{})
}

// Expiring renders pantry items whose best-before date falls within the next
// days days, today included. days <= 0 uses DefaultExpiringDays.
func (l *Loaders) Expiring(ctx context.Context, t view.Ticket, days int) error {
	if days <= 0 {
		days = DefaultExpiringDays
	}
	from := l.today()
	to := from.AddDays(days)
	return l.pantry(ctx, t, "expiring", api.PantryQuery{ExpFrom: &from, ExpTo: &to})
}

func (l *Loaders) pantry(ctx context.Context, t view.Ticket, what string, q api.PantryQuery) error {
	page, err := l.api.ListPantry(ctx, q)
	if err != nil {
		return l.readFailed(ctx, what, err)
	}
	return l.apply(ctx, t, what, func() error {
		return l.render.Pantry(l.out, render.BuildPantryRows(page.Content, l.today()))
	})
}

// Snapshot fetches the first recipe and pantry pages concurrently, without
// rendering.
func (l *Loaders) Snapshot(ctx context.Context) ([]models.Recipe, []models.PantryItem, error) {
	var (
		recipes models.Page[models.Recipe]
		pantry  models.Page[models.PantryItem]
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recipes, err = l.api.ListRecipes(gctx, api.RecipeQuery{})
		return err
	})
	g.Go(func() error {
		var err error
		pantry, err = l.api.ListPantry(gctx, api.PantryQuery{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, l.readFailed(ctx, "snapshot", err)
	}
	return recipes.Content, pantry.Content, nil
}
