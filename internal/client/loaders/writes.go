package loaders

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/api"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/view"
)

// WriteError is a failed write. Message is what the user sees: the server's
// detail, or UnknownError.
type WriteError struct {
	Message string
	Err     error
}

func (e *WriteError) Error() string { return e.Message }

func (e *WriteError) Unwrap() error { return e.Err }

// Message returns the user-facing text for err.
func Message(err error) string {
	var we *WriteError
	if errors.As(err, &we) {
		return we.Message
	}
	return api.Detail(err, UnknownError)
}

func (l *Loaders) writeFailed(ctx context.Context, op string, err error) error {
	l.log.Warn(ctx, "write failed", "op", op, "error", err)
	return &WriteError{Message: api.Detail(err, UnknownError), Err: fmt.Errorf("%s: %w", op, err)}
}

// reload closes the open form and re-runs fn for the current view. Reload
// errors are logged only; the write's result stands.
func (l *Loaders) reload(ctx context.Context, fn func(ctx context.Context, t view.Ticket) error) {
	l.ctrl.CloseForm()
	if err := fn(ctx, l.ctrl.Ticket()); err != nil {
		l.log.Debug(ctx, "reload after write skipped", "error", err)
	}
}

func (l *Loaders) CreateRecipe(ctx context.Context, r models.NewRecipe) (models.Recipe, error) {
	created, err := l.api.CreateRecipe(ctx, r)
	if err != nil {
		return models.Recipe{}, l.writeFailed(ctx, "create recipe", err)
	}
	l.reload(ctx, l.Recipes)
	return created, nil
}

func (l *Loaders) UpdateRecipe(ctx context.Context, id int64, u models.RecipeUpdate) (models.Recipe, error) {
	updated, err := l.api.UpdateRecipe(ctx, id, u)
	if err != nil {
		return models.Recipe{}, l.writeFailed(ctx, "update recipe", err)
	}
	l.reload(ctx, l.Recipes)
	return updated, nil
}

// DeleteRecipe asks confirm first; a declined confirmation sends nothing and
// reports false.
func (l *Loaders) DeleteRecipe(ctx context.Context, id int64, confirm Confirm) (bool, error) {
	if !confirm("Are you sure you want to delete this recipe?") {
		return false, nil
	}
	if err := l.api.DeleteRecipe(ctx, id); err != nil {
		return false, l.writeFailed(ctx, "delete recipe", err)
	}
	l.reload(ctx, l.Recipes)
	return true, nil
}

func (l *Loaders) CreatePantryItem(ctx context.Context, item models.NewPantryItem) (models.PantryItem, error) {
	created, err := l.api.CreatePantryItem(ctx, item)
	if err != nil {
		return models.PantryItem{}, l.writeFailed(ctx, "create pantry item", err)
	}
	l.reload(ctx, l.Pantry)
	return created, nil
}

func (l *Loaders) UpdatePantryItem(ctx context.Context, id int64, u models.PantryUpdate) (models.PantryItem, error) {
	updated, err := l.api.UpdatePantryItem(ctx, id, u)
	if err != nil {
		return models.PantryItem{}, l.writeFailed(ctx, "update pantry item", err)
	}
	l.reload(ctx, l.Pantry)
	return updated, nil
}

// DeletePantryItem asks confirm first; a declined confirmation sends nothing
// and reports false.
func (l *Loaders) DeletePantryItem(ctx context.Context, id int64, confirm Confirm) (bool, error) {
	if !confirm("Are you sure you want to delete this item?") {
		return false, nil
	}
	if err := l.api.DeletePantryItem(ctx, id); err != nil {
		return false, l.writeFailed(ctx, "delete pantry item", err)
	}
	l.reload(ctx, l.Pantry)
	return true, nil
}
