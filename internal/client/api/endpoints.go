package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
)

// RecipeQuery filters GET /recipes. Zero values are omitted.
type RecipeQuery struct {
	models.PageRequest
	Text       string
	MaxTime    int
	Ingredient string
}

// PantryQuery filters GET /pantry. Zero values are omitted.
type PantryQuery struct {
	models.PageRequest
	Ingredient string
	ExpFrom    *models.Date
	ExpTo      *models.Date
}

func (q RecipeQuery) values() url.Values {
	v := pageValues(q.PageRequest)
	setNonEmpty(v, "q", q.Text)
	setNonEmpty(v, "ingredient", q.Ingredient)
	if q.MaxTime > 0 {
		v.Set("maxTime", strconv.Itoa(q.MaxTime))
	}
	return v
}

func (q PantryQuery) values() url.Values {
	v := pageValues(q.PageRequest)
	setNonEmpty(v, "ingredient", q.Ingredient)
	if q.ExpFrom != nil {
		v.Set("expFrom", q.ExpFrom.String())
	}
	if q.ExpTo != nil {
		v.Set("expTo", q.ExpTo.String())
	}
	return v
}

func pageValues(p models.PageRequest) url.Values {
	v := url.Values{}
	if p.Page > 0 || p.Size > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		v.Set("size", strconv.Itoa(p.Size))
	}
	return v
}

func setNonEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

// Signup creates an account. It does not log in.
func (c *Client) Signup(ctx context.Context, creds models.Credentials) (models.UserProfile, error) {
	var user models.UserProfile
	err := c.Post(ctx, "/auth/signup", creds, &user)
	return user, err
}

// Login exchanges email and password for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	var res models.LoginResult
	err := c.Post(ctx, "/auth/login", models.Credentials{Email: email, Password: password}, &res)
	return res, err
}

// Me returns the profile the current token belongs to.
func (c *Client) Me(ctx context.Context) (models.UserProfile, error) {
	var user models.UserProfile
	err := c.Get(ctx, "/auth/me", nil, &user)
	return user, err
}

func (c *Client) ListRecipes(ctx context.Context, q RecipeQuery) (models.Page[models.Recipe], error) {
	var page models.Page[models.Recipe]
	err := c.Get(ctx, "/recipes", q.values(), &page)
	return page, err
}

func (c *Client) GetRecipe(ctx context.Context, id int64) (models.Recipe, error) {
	var r models.Recipe
	err := c.Get(ctx, idPath("/recipes", id), nil, &r)
	return r, err
}

func (c *Client) CreateRecipe(ctx context.Context, r models.NewRecipe) (models.Recipe, error) {
	if r.Steps == "" {
		r.Steps = r.Instructions
	}
	if r.Instructions == "" {
		r.Instructions = r.Steps
	}
	if r.Ingredients == nil {
		r.Ingredients = []models.Ingredient{}
	}
	var created models.Recipe
	err := c.Post(ctx, "/recipes", r, &created)
	return created, err
}

func (c *Client) UpdateRecipe(ctx context.Context, id int64, u models.RecipeUpdate) (models.Recipe, error) {
	var updated models.Recipe
	err := c.Patch(ctx, idPath("/recipes", id), u, &updated)
	return updated, err
}

func (c *Client) DeleteRecipe(ctx context.Context, id int64) error {
	return c.Delete(ctx, idPath("/recipes", id))
}

func (c *Client) ListPantry(ctx context.Context, q PantryQuery) (models.Page[models.PantryItem], error) {
	var page models.Page[models.PantryItem]
	err := c.Get(ctx, "/pantry", q.values(), &page)
	return page, err
}

func (c *Client) CreatePantryItem(ctx context.Context, item models.NewPantryItem) (models.PantryItem, error) {
	var created models.PantryItem
	err := c.Post(ctx, "/pantry", item, &created)
	return created, err
}

func (c *Client) UpdatePantryItem(ctx context.Context, id int64, u models.PantryUpdate) (models.PantryItem, error) {
	var updated models.PantryItem
	err := c.Patch(ctx, idPath("/pantry", id), u, &updated)
	return updated, err
}

func (c *Client) DeletePantryItem(ctx context.Context, id int64) error {
	return c.Delete(ctx, idPath("/pantry", id))
}
