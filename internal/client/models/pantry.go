package models

// PantryItem is a server-owned pantry row. ExpiresOn is nil when the item has
// no best-before date.
type PantryItem struct {
	ID             int64  `json:"id"`
	IngredientName string `json:"ingredientName"`
	Amount         string `json:"amount"`
	ExpiresOn      *Date  `json:"expiresOn,omitempty"`
}

// NewPantryItem is the body of POST /pantry. A nil ExpiresOn is sent as null.
type NewPantryItem struct {
	IngredientName string `json:"ingredientName"`
	Amount         string `json:"amount"`
	ExpiresOn      *Date  `json:"expiresOn"`
}

// PantryUpdate is the body of PATCH /pantry/{id}. Nil fields are left alone.
type PantryUpdate struct {
	Amount    *string `json:"amount,omitempty"`
	ExpiresOn *Date   `json:"expiresOn,omitempty"`
}
