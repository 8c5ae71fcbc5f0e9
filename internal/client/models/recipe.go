package models

import "strings"

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Recipe is a server-owned recipe snapshot.
//
// Steps holds newline-delimited instructions. Older payloads used the key
// "instructions"; UnmarshalJSON folds it into Steps.
type Recipe struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Steps       string       `json:"steps,omitempty"`
	Tags        string       `json:"tags,omitempty"`
	CookTimeMin *int         `json:"cookTimeMin,omitempty"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
}

// TagList splits the comma-joined Tags field, dropping blanks.
func (r Recipe) TagList() []string {
	return splitNonEmpty(r.Tags, ",")
}

// StepList returns the non-empty, trimmed lines of Steps.
func (r Recipe) StepList() []string {
	return splitNonEmpty(strings.ReplaceAll(r.Steps, "\r\n", "\n"), "\n")
}

// NewRecipe is the body of POST /recipes.
//
// Instructions and Steps carry the same text; the API has accepted both names
// over time.
type NewRecipe struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Instructions string       `json:"instructions"`
	Steps        string       `json:"steps"`
	CookTimeMin  *int         `json:"cookTimeMin,omitempty"`
	Tags         string       `json:"tags,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
}

// RecipeUpdate is the body of PATCH /recipes/{id}. Nil fields are left alone.
type RecipeUpdate struct {
	Title       *string `json:"title,omitempty"`
	Steps       *string `json:"steps,omitempty"`
	CookTimeMin *int    `json:"cookTimeMin,omitempty"`
	Tags        *string `json:"tags,omitempty"`
}

func splitNonEmpty(s, sep string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
