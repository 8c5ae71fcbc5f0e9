package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTMLRenderer writes auto-escaped HTML fragments.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTML() (*HTMLRenderer, error) {
	funcs := template.FuncMap{
		"emptyRecipes": func() string { return EmptyRecipes },
		"emptyPantry":  func() string { return EmptyPantry },
	}
	t, err := template.New("views").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &HTMLRenderer{tmpl: t}, nil
}

func (r *HTMLRenderer) exec(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func (r *HTMLRenderer) LoginForm(w io.Writer, form view.LoginForm) error {
	return r.exec(w, "login", form)
}

func (r *HTMLRenderer) Dashboard(w io.Writer, d Dashboard) error {
	return r.exec(w, "dashboard", d)
}

func (r *HTMLRenderer) Recipes(w io.Writer, cards []RecipeCard) error {
	return r.exec(w, "recipes", cards)
}

func (r *HTMLRenderer) Recipe(w io.Writer, card RecipeCard) error {
	return r.exec(w, "recipe-card", card)
}

func (r *HTMLRenderer) Pantry(w io.Writer, rows []PantryRow) error {
	return r.exec(w, "pantry", rows)
}
