package kitchenfake

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo1234"
	DemoName     = "Demo"
)

// Seed creates the demo user with a few recipes and pantry items. Pantry
// dates are relative to now so every expiry status is represented.
func Seed(store *Store, now time.Time, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), cost)
	if err != nil {
		return err
	}
	u, err := store.CreateUser(DemoEmail, DemoName, hash)
	if err != nil {
		return err
	}

	twenty, forty := 20, 40
	store.CreateRecipe(u.ID, Recipe{
		Title:       "Pancakes",
		Description: "Weekend breakfast",
		Steps:       "Whisk flour, eggs and milk\nRest 10 minutes\nFry in a hot pan",
		Tags:        "breakfast,sweet",
		CookTimeMin: &twenty,
		Ingredients: []Ingredient{{Name: "flour", Quantity: "200g"}, {Name: "eggs", Quantity: "2"}, {Name: "milk", Quantity: "300ml"}},
	})
	store.CreateRecipe(u.ID, Recipe{
		Title:       "Tomato soup",
		Steps:       "Roast tomatoes\nBlend with stock\nSeason",
		Tags:        "dinner",
		CookTimeMin: &forty,
		Ingredients: []Ingredient{{Name: "tomatoes", Quantity: "1kg"}, {Name: "stock", Quantity: "500ml"}},
	})

	day := func(n int) *string {
		s := now.AddDate(0, 0, n).Format(dateLayout)
		return &s
	}
	store.CreatePantryItem(u.ID, PantryItem{IngredientName: "Milk", Amount: "1L", ExpiresOn: day(2)})
	store.CreatePantryItem(u.ID, PantryItem{IngredientName: "Yogurt", Amount: "500g", ExpiresOn: day(-1)})
	store.CreatePantryItem(u.ID, PantryItem{IngredientName: "Rice", Amount: "2kg", ExpiresOn: day(180)})
	store.CreatePantryItem(u.ID, PantryItem{IngredientName: "Salt", Amount: "1kg"})
	return nil
}
