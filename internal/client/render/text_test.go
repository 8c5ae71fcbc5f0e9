package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/view"
)

func TestText_EmptyLists(t *testing.T) {
	r := NewText()

	var buf bytes.Buffer
	require.NoError(t, r.Recipes(&buf, nil))
	assert.Equal(t, EmptyRecipes+"\n", buf.String())

	buf.Reset()
	require.NoError(t, r.Pantry(&buf, nil))
	assert.Equal(t, EmptyPantry+"\n", buf.String())
}

func TestText_Recipe(t *testing.T) {
	card := BuildRecipeCard(models.Recipe{
		ID:          3,
		Title:       "Omelette",
		Tags:        "quick",
		CookTimeMin: intPtr(10),
		Steps:       "Beat eggs\nCook",
		Ingredients: []models.Ingredient{{Name: "eggs", Quantity: "3"}},
	})

	var buf bytes.Buffer
	require.NoError(t, NewText().Recipe(&buf, card))

	want := "#3 Omelette\n" +
		"  Tags: [quick]\n" +
		"  Cook time: 10 min\n" +
		"  Ingredients:\n" +
		"    - eggs - 3\n" +
		"  Instructions:\n" +
		"    1. Beat eggs\n" +
		"    2. Cook\n"
	assert.Equal(t, want, buf.String())
}

func TestText_Pantry(t *testing.T) {
	today := models.Date{Year: 2024, Month: 1, Day: 1}
	rows := BuildPantryRows([]models.PantryItem{
		{ID: 1, IngredientName: "Milk", Amount: "1L", ExpiresOn: datePtr(today.AddDays(-1))},
		{ID: 2, IngredientName: "Rice", Amount: "1kg"},
	}, today)

	var buf bytes.Buffer
	require.NoError(t, NewText().Pantry(&buf, rows))

	out := buf.String()
	assert.Contains(t, out, "INGREDIENT")
	assert.Contains(t, out, "Expired: 2023-12-31")
	assert.Contains(t, out, "Rice")
}

func TestText_DashboardAndLogin(t *testing.T) {
	r := NewText()

	var buf bytes.Buffer
	require.NoError(t, r.Dashboard(&buf, Dashboard{RecipeCount: 2, PantryCount: 5, ExpiringCount: 1}))
	assert.Contains(t, buf.String(), "Recipes:        2")
	assert.Contains(t, buf.String(), "Expiring soon:  1")
	assert.NotContains(t, buf.String(), "Welcome")

	buf.Reset()
	require.NoError(t, r.LoginForm(&buf, view.SignUp.Form()))
	assert.Contains(t, buf.String(), "Fields: name, email, password")
	assert.Contains(t, buf.String(), "Submit: Sign up")
}
