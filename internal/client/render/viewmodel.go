// Package render turns fetched records into output.
//
// Builders (BuildRecipeCard, BuildPantryRow, BuildDashboard) are pure
// functions from records to view models. The HTML and text renderers only
// lay those models out, so the decisions about what to show (tag badges,
// step lines, expiry status) live in one place and are tested once.
package render

import (
	"fmt"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
)

// Empty-state messages shown instead of an empty list.
const (
	EmptyRecipes = "No recipes found. Create your first recipe!"
	EmptyPantry  = "No pantry items found. Add your first item!"
)

type RecipeCard struct {
	ID          int64
	Title       string
	Description string
	Tags        []string
	CookTimeMin *int
	// Ingredients are preformatted "name - quantity" lines.
	Ingredients []string
	Steps       []string
}

func BuildRecipeCard(r models.Recipe) RecipeCard {
	card := RecipeCard{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.TagList(),
		Steps:       r.StepList(),
	}
	if r.CookTimeMin != nil && *r.CookTimeMin > 0 {
		v := *r.CookTimeMin
		card.CookTimeMin = &v
	}
	for _, ing := range r.Ingredients {
		card.Ingredients = append(card.Ingredients, fmt.Sprintf("%s - %s", ing.Name, ing.Quantity))
	}
	return card
}

func BuildRecipeCards(recipes []models.Recipe) []RecipeCard {
	cards := make([]RecipeCard, 0, len(recipes))
	for _, r := range recipes {
		cards = append(cards, BuildRecipeCard(r))
	}
	return cards
}

// ExpiryLine is the status-qualified best-before line of a pantry row.
type ExpiryLine struct {
	Status models.ExpiryStatus
	Label  string
	Date   string
	Class  string
}

func (e ExpiryLine) Text() string {
	return e.Label + ": " + e.Date
}

type PantryRow struct {
	ID     int64
	Name   string
	Amount string
	// RowClass highlights expired and expiring rows; empty for normal ones.
	RowClass string
	// Expiry is nil when the item has no best-before date.
	Expiry *ExpiryLine
}

func BuildPantryRow(item models.PantryItem, today models.Date) PantryRow {
	row := PantryRow{ID: item.ID, Name: item.IngredientName, Amount: item.Amount}
	if item.ExpiresOn == nil || item.ExpiresOn.IsZero() {
		return row
	}

	status := item.Status(today)
	line := &ExpiryLine{Status: status, Date: item.ExpiresOn.String()}
	switch status {
	case models.StatusExpired:
		line.Label = "Expired"
		line.Class = "text-red-600 font-semibold"
		row.RowClass = "bg-red-50"
	case models.StatusExpiringSoon:
		line.Label = "Expiring soon"
		line.Class = "text-yellow-600 font-semibold"
		row.RowClass = "bg-yellow-50"
	default:
		line.Label = "Best before"
		line.Class = "text-gray-600"
	}
	row.Expiry = line
	return row
}

func BuildPantryRows(items []models.PantryItem, today models.Date) []PantryRow {
	rows := make([]PantryRow, 0, len(items))
	for _, it := range items {
		rows = append(rows, BuildPantryRow(it, today))
	}
	return rows
}

// Dashboard holds the three dashboard counters. ExpiringCount only covers the
// pantry page that was fetched, not the whole pantry.
type Dashboard struct {
	UserName      string
	RecipeCount   int64
	PantryCount   int64
	ExpiringCount int
}

func BuildDashboard(userName string, recipes models.Page[models.Recipe], pantry models.Page[models.PantryItem], today models.Date) Dashboard {
	return Dashboard{
		UserName:      userName,
		RecipeCount:   recipes.TotalElements,
		PantryCount:   pantry.TotalElements,
		ExpiringCount: models.CountExpiringSoon(pantry.Content, today),
	}
}
