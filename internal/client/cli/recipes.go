package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/api"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/loaders"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/view"
)

var errInvalidMaxTime = errors.New("invalid max cook time")

func (a *App) Dashboard(ctx context.Context) error {
	return a.loaders.Dashboard(ctx, a.ctrl.ShowDashboard())
}

func (a *App) Recipes(ctx context.Context) error {
	return a.loaders.Recipes(ctx, a.ctrl.ShowRecipes())
}

func (a *App) ShowRecipe(ctx context.Context, args []string) error {
	id, err := parseID(args, "show-recipe <id>")
	if err != nil {
		a.println(err)
		return err
	}
	return a.loaders.Recipe(ctx, a.ctrl.ShowRecipes(), id)
}

func (a *App) SearchRecipes(ctx context.Context) error {
	var q api.RecipeQuery
	var err error
	if q.Text, err = GetSimpleText(a.reader, "Search text (title or description, optional)", a.out); err != nil {
		return err
	}
	maxTime, err := GetSimpleText(a.reader, "Max cook time in minutes (optional)", a.out)
	if err != nil {
		return err
	}
	if maxTime != "" {
		n, err := strconv.Atoi(maxTime)
		if err != nil || n < 0 {
			a.println("Max cook time must be a whole number of minutes.")
			return errInvalidMaxTime
		}
		q.MaxTime = n
	}
	if q.Ingredient, err = GetSimpleText(a.reader, "Ingredient (optional)", a.out); err != nil {
		return err
	}
	return a.loaders.SearchRecipes(ctx, a.ctrl.ShowRecipes(), q)
}

// AddRecipe opens the recipe form on the recipes page. A failed submit keeps
// the form open and offers to edit the draft and try again.
func (a *App) AddRecipe(ctx context.Context) error {
	if a.ctrl.Page() != view.Recipes {
		a.ctrl.ShowRecipes()
	}
	a.ctrl.OpenForm(view.RecipeForm)
	defer a.ctrl.CloseForm()

	var d recipeDraft
	for {
		if err := a.editRecipe(&d); err != nil {
			return err
		}
		r, err := d.toNewRecipe()
		if err != nil {
			a.println(err)
		} else {
			created, err := a.loaders.CreateRecipe(ctx, r)
			if err == nil {
				a.printf("Recipe #%d created.\n", created.ID)
				return nil
			}
			a.println(loaders.Message(err))
			if !isWriteError(err) || a.ctrl.OpenedForm() != view.RecipeForm {
				return err
			}
		}
		if !a.confirm("Edit and resubmit?") {
			return nil
		}
	}
}

func (a *App) editRecipe(d *recipeDraft) error {
	var err error
	if d.Title, err = GetTextWithDefault(a.reader, "Title", d.Title, a.out); err != nil {
		return err
	}
	if d.Description, err = GetTextWithDefault(a.reader, "Description (optional)", d.Description, a.out); err != nil {
		return err
	}
	if d.CookTime, err = GetTextWithDefault(a.reader, "Cook time in minutes (optional)", d.CookTime, a.out); err != nil {
		return err
	}
	if d.Tags, err = GetTextWithDefault(a.reader, "Tags, comma separated (optional)", d.Tags, a.out); err != nil {
		return err
	}

	prompt := "Ingredients, one per line as 'name - quantity'"
	if len(d.Ingredients) > 0 {
		prompt += " (empty keeps the current list)"
	}
	lines, err := GetLines(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if len(lines) > 0 {
		d.Ingredients = lines
	}

	prompt = "Instructions, one step per line"
	if d.Steps != "" {
		prompt += " (empty keeps the current steps)"
	}
	steps, err := GetMultiline(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	if steps != "" {
		d.Steps = steps
	}
	return nil
}

func (a *App) DeleteRecipe(ctx context.Context, args []string) error {
	id, err := parseID(args, "delete-recipe <id>")
	if err != nil {
		a.println(err)
		return err
	}
	if a.ctrl.Page() != view.Recipes {
		a.ctrl.ShowRecipes()
	}
	deleted, err := a.loaders.DeleteRecipe(ctx, id, a.confirm)
	if err != nil {
		if isWriteError(err) {
			a.println(loaders.Message(err))
		}
		return err
	}
	if !deleted {
		a.println("Cancelled.")
	}
	return nil
}
