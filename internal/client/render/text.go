package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/view"
)

// TextRenderer writes plain terminal output.
type TextRenderer struct{}

func NewText() *TextRenderer {
	return &TextRenderer{}
}

// errWriter remembers the first write error so the layout code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (r *TextRenderer) LoginForm(w io.Writer, form view.LoginForm) error {
	ew := &errWriter{w: w}
	ew.printf("== %s ==\n", form.Heading)
	if form.NameVisible {
		ew.printf("Fields: name, email, password\n")
	} else {
		ew.printf("Fields: email, password\n")
	}
	ew.printf("Submit: %s\n", form.SubmitLabel)
	ew.printf("(%s: type 'mode')\n", form.ToggleLabel)
	return ew.err
}

func (r *TextRenderer) Dashboard(w io.Writer, d Dashboard) error {
	ew := &errWriter{w: w}
	if d.UserName != "" {
		ew.printf("Welcome, %s\n", d.UserName)
	}
	ew.printf("Recipes:        %d\n", d.RecipeCount)
	ew.printf("Pantry items:   %d\n", d.PantryCount)
	ew.printf("Expiring soon:  %d\n", d.ExpiringCount)
	return ew.err
}

func (r *TextRenderer) Recipes(w io.Writer, cards []RecipeCard) error {
	if len(cards) == 0 {
		_, err := fmt.Fprintln(w, EmptyRecipes)
		return err
	}
	for i, c := range cards {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := r.Recipe(w, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) Recipe(w io.Writer, c RecipeCard) error {
	ew := &errWriter{w: w}
	ew.printf("#%d %s\n", c.ID, c.Title)
	if c.Description != "" {
		ew.printf("  %s\n", c.Description)
	}
	if len(c.Tags) > 0 {
		ew.printf("  Tags: [%s]\n", strings.Join(c.Tags, "] ["))
	}
	if c.CookTimeMin != nil {
		ew.printf("  Cook time: %d min\n", *c.CookTimeMin)
	}
	if len(c.Ingredients) > 0 {
		ew.printf("  Ingredients:\n")
		for _, line := range c.Ingredients {
			ew.printf("    - %s\n", line)
		}
	}
	if len(c.Steps) > 0 {
		ew.printf("  Instructions:\n")
		for i, s := range c.Steps {
			ew.printf("    %d. %s\n", i+1, s)
		}
	}
	return ew.err
}

func (r *TextRenderer) Pantry(w io.Writer, rows []PantryRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, EmptyPantry)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tINGREDIENT\tAMOUNT\tEXPIRY")
	for _, row := range rows {
		expiry := "-"
		if row.Expiry != nil {
			expiry = row.Expiry.Text()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", row.ID, row.Name, row.Amount, expiry)
	}
	return tw.Flush()
}
