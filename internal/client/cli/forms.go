package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
)

// recipeDraft holds the recipe form between attempts, so a failed submit can
// be corrected instead of retyped.
type recipeDraft struct {
	Title       string
	Description string
	CookTime    string
	Tags        string
	Ingredients []string
	Steps       string
}

func (d recipeDraft) toNewRecipe() (models.NewRecipe, error) {
	r := models.NewRecipe{
		Title:       d.Title,
		Description: d.Description,
		Steps:       d.Steps,
		Tags:        normalizeTags(d.Tags),
		Ingredients: []models.Ingredient{},
	}
	if d.CookTime != "" {
		n, err := strconv.Atoi(d.CookTime)
		if err != nil || n < 0 {
			return models.NewRecipe{}, fmt.Errorf("cook time must be a whole number of minutes, got %q", d.CookTime)
		}
		r.CookTimeMin = &n
	}
	for _, line := range d.Ingredients {
		ing, err := parseIngredient(line)
		if err != nil {
			return models.NewRecipe{}, err
		}
		r.Ingredients = append(r.Ingredients, ing)
	}
	return r, nil
}

// normalizeTags trims each comma-separated tag and drops empty ones.
func normalizeTags(s string) string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return strings.Join(tags, ",")
}

// parseIngredient reads "name - quantity". The quantity is optional.
func parseIngredient(line string) (models.Ingredient, error) {
	name, qty, _ := strings.Cut(line, " - ")
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Ingredient{}, fmt.Errorf("ingredient %q has no name", line)
	}
	return models.Ingredient{Name: name, Quantity: strings.TrimSpace(qty)}, nil
}

// pantryDraft holds the pantry form between attempts.
type pantryDraft struct {
	Name      string
	Amount    string
	ExpiresOn string
}

func (d pantryDraft) toNewPantryItem() (models.NewPantryItem, error) {
	item := models.NewPantryItem{IngredientName: d.Name, Amount: d.Amount}
	if d.ExpiresOn != "" {
		date, err := models.ParseDate(d.ExpiresOn)
		if err != nil {
			return models.NewPantryItem{}, errors.New("best-before date must be YYYY-MM-DD")
		}
		item.ExpiresOn = &date
	}
	return item, nil
}

func parseID(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, errors.New("Usage: " + usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}
