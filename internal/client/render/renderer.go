package render

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/view"
)

// Renderer lays view models out on w.
type Renderer interface {
	LoginForm(w io.Writer, form view.LoginForm) error
	Dashboard(w io.Writer, d Dashboard) error
	Recipes(w io.Writer, cards []RecipeCard) error
	Recipe(w io.Writer, card RecipeCard) error
	Pantry(w io.Writer, rows []PantryRow) error
}

// New returns the renderer for format ("text" or "html").
func New(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return NewText(), nil
	case "html":
		return NewHTML()
	default:
		return nil, fmt.Errorf("unknown render format %q", format)
	}
}
