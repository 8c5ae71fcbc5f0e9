package kitchenfake

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/kitchenkeeper/internal/kitchenfake/auth"
	"github.com/dmitrijs2005/kitchenkeeper/internal/logging"
)

var testSecret = []byte("test-secret")

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := NewHandler(NewStore(), Options{SecretKey: testSecret, BcryptCost: bcrypt.MinCost}, logging.Discard())
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, []byte, http.Header) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, srv.URL+"/api"+path, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data, resp.Header
}

func problemDetail(t *testing.T, data []byte) string {
	t.Helper()
	var p Problem
	require.NoError(t, json.Unmarshal(data, &p))
	return p.Detail
}

func signupAndLogin(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()
	status, _, _ := call(t, srv, http.MethodPost, "/auth/signup", "", signupRequest{Email: email, Password: "secret1", Name: "Ann"})
	require.Equal(t, http.StatusCreated, status)

	status, data, _ := call(t, srv, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: "secret1"})
	require.Equal(t, http.StatusOK, status)
	var res loginResponse
	require.NoError(t, json.Unmarshal(data, &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func TestSignup_DuplicateEmail(t *testing.T) {
	srv := newTestServer(t)
	signupAndLogin(t, srv, "ann@example.com")

	status, data, hdr := call(t, srv, http.MethodPost, "/auth/signup", "", signupRequest{Email: "ANN@example.com", Password: "secret1", Name: "Ann"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "application/problem+json", hdr.Get("Content-Type"))
	assert.Equal(t, "email already exists", problemDetail(t, data))
}

func TestSignup_Validation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		req    signupRequest
		detail string
	}{
		{"blank email", signupRequest{Password: "secret1", Name: "A"}, "email must not be blank"},
		{"bad email", signupRequest{Email: "nope", Password: "secret1", Name: "A"}, "email must be a valid address"},
		{"short password", signupRequest{Email: "a@b.co", Password: "123", Name: "A"}, "password must be at least 6 characters"},
		{"blank name", signupRequest{Email: "a@b.co", Password: "secret1", Name: " "}, "name must not be blank"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, data, _ := call(t, srv, http.MethodPost, "/auth/signup", "", tt.req)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, tt.detail, problemDetail(t, data))
		})
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := newTestServer(t)
	signupAndLogin(t, srv, "ann@example.com")

	status, data, _ := call(t, srv, http.MethodPost, "/auth/login", "", loginRequest{Email: "ann@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid email or password", problemDetail(t, data))
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	srv := newTestServer(t)

	status, _, _ := call(t, srv, http.MethodGet, "/recipes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _, _ = call(t, srv, http.MethodGet, "/pantry", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	expired, err := auth.GenerateToken(1, testSecret, -time.Minute)
	require.NoError(t, err)
	status, data, _ := call(t, srv, http.MethodGet, "/auth/me", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "token expired", problemDetail(t, data))
}

func TestMe(t *testing.T) {
	srv := newTestServer(t)
	token := signupAndLogin(t, srv, "ann@example.com")

	status, data, _ := call(t, srv, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	var u userResponse
	require.NoError(t, json.Unmarshal(data, &u))
	assert.Equal(t, "ann@example.com", u.Email)
	assert.Equal(t, "Ann", u.Name)
}

func TestRecipes_CreateListPaginate(t *testing.T) {
	srv := newTestServer(t)
	token := signupAndLogin(t, srv, "ann@example.com")

	for _, title := range []string{"A", "B", "C"} {
		status, _, _ := call(t, srv, http.MethodPost, "/recipes", token, recipeRequest{Title: title, Instructions: "step"})
		require.Equal(t, http.StatusCreated, status)
	}

	status, data, _ := call(t, srv, http.MethodGet, "/recipes?page=0&size=2", token, nil)
	require.Equal(t, http.StatusOK, status)

	var page pageResponse[Recipe]
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Equal(t, 3, page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Content, 2)
	assert.Equal(t, "C", page.Content[0].Title)
	assert.Equal(t, "B", page.Content[1].Title)
	assert.Equal(t, "step", page.Content[0].Steps, "instructions fall back into steps")

	status, data, _ = call(t, srv, http.MethodGet, "/recipes?page=5&size=2", token, nil)
	require.Equal(t, http.StatusOK, status)
	page = pageResponse[Recipe]{}
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Empty(t, page.Content)
	assert.NotNil(t, page.Content)
}

func TestRecipes_Filters(t *testing.T) {
	srv := newTestServer(t)
	token := signupAndLogin(t, srv, "ann@example.com")

	ten, sixty := 10, 60
	call(t, srv, http.MethodPost, "/recipes", token, recipeRequest{Title: "Quick salad", CookTimeMin: &ten, Ingredients: []Ingredient{{Name: "Lettuce", Quantity: "1"}}})
	call(t, srv, http.MethodPost, "/recipes", token, recipeRequest{Title: "Slow stew", CookTimeMin: &sixty, Ingredients: []Ingredient{{Name: "beef", Quantity: "1kg"}}})

	list := func(query string) []Recipe {
		status, data, _ := call(t, srv, http.MethodGet, "/recipes?"+query, token, nil)
		require.Equal(t, http.StatusOK, status)
		var page pageResponse[Recipe]
		require.NoError(t, json.Unmarshal(data, &page))
		return page.Content
	}

	assert.Len(t, list("q=STEW"), 1)
	assert.Len(t, list("maxTime=30"), 1)
	assert.Equal(t, "Quick salad", list("ingredient=lettuce")[0].Title)
	assert.Len(t, list(""), 2)

	status, data, _ := call(t, srv, http.MethodGet, "/recipes?maxTime=abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "maxTime must be a non-negative integer", problemDetail(t, data))
}

func TestRecipes_ValidationAndOwnership(t *testing.T) {
	srv := newTestServer(t)
	ann := signupAndLogin(t, srv, "ann@example.com")
	bob := signupAndLogin(t, srv, "bob@example.com")

	status, data, _ := call(t, srv, http.MethodPost, "/recipes", ann, recipeRequest{Title: "  "})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "title must not be blank", problemDetail(t, data))

	status, data, _ = call(t, srv, http.MethodPost, "/recipes", ann, recipeRequest{Title: "Soup"})
	require.Equal(t, http.StatusCreated, status)
	var rec Recipe
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.NotNil(t, rec.Ingredients)

	path := "/recipes/" + jsonNumber(rec.ID)
	status, _, _ = call(t, srv, http.MethodGet, path, bob, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _, _ = call(t, srv, http.MethodDelete, path, bob, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRecipes_PatchAndDelete(t *testing.T) {
	srv := newTestServer(t)
	token := signupAndLogin(t, srv, "ann@example.com")

	_, data, _ := call(t, srv, http.MethodPost, "/recipes", token, recipeRequest{Title: "Soup", Tags: "dinner"})
	var rec Recipe
	require.NoError(t, json.Unmarshal(data, &rec))
	path := "/recipes/" + jsonNumber(rec.ID)

	title := "Stew"
	status, data, _ := call(t, srv, http.MethodPatch, path, token, recipePatch{Title: &title})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "Stew", rec.Title)
	assert.Equal(t, "dinner", rec.Tags)

	status, _, _ = call(t, srv, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, data, _ = call(t, srv, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "recipe not found with id "+jsonNumber(rec.ID), problemDetail(t, data))
}

func TestPantry_CreateFilterPatch(t *testing.T) {
	srv := newTestServer(t)
	token := signupAndLogin(t, srv, "ann@example.com")

	date := func(s string) *string { return &s }
	for _, req := range []pantryRequest{
		{IngredientName: "Milk", Amount: "1L", ExpiresOn: date("2024-03-12")},
		{IngredientName: "Eggs", Amount: "6", ExpiresOn: date("2024-03-20")},
		{IngredientName: "Salt", Amount: "1kg"},
		{IngredientName: "Flour", Amount: "1kg", ExpiresOn: date("")},
	} {
		status, _, _ := call(t, srv, http.MethodPost, "/pantry", token, req)
		require.Equal(t, http.StatusCreated, status)
	}

	status, data, _ := call(t, srv, http.MethodGet, "/pantry?expFrom=2024-03-10&expTo=2024-03-13", token, nil)
	require.Equal(t, http.StatusOK, status)
	var page pageResponse[PantryItem]
	require.NoError(t, json.Unmarshal(data, &page))
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Milk", page.Content[0].IngredientName)

	status, data, _ = call(t, srv, http.MethodGet, "/pantry", token, nil)
	require.Equal(t, http.StatusOK, status)
	page = pageResponse[PantryItem]{}
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Equal(t, 4, page.TotalElements)
	assert.Nil(t, page.Content[0].ExpiresOn, "empty expiresOn is stored as null")

	status, data, _ = call(t, srv, http.MethodPost, "/pantry", token, pantryRequest{IngredientName: "Jam", Amount: "1", ExpiresOn: date("12/03/2024")})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "expiresOn must be YYYY-MM-DD", problemDetail(t, data))

	milkID := jsonNumber(page.Content[3].ID)
	amount := "2L"
	status, data, _ = call(t, srv, http.MethodPatch, "/pantry/"+milkID, token, pantryPatch{Amount: &amount})
	require.Equal(t, http.StatusOK, status)
	var item PantryItem
	require.NoError(t, json.Unmarshal(data, &item))
	assert.Equal(t, "2L", item.Amount)
	require.NotNil(t, item.ExpiresOn)
	assert.Equal(t, "2024-03-12", *item.ExpiresOn)

	status, _, _ = call(t, srv, http.MethodDelete, "/pantry/"+milkID, token, nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestPantry_BlankFields(t *testing.T) {
	srv := newTestServer(t)
	token := signupAndLogin(t, srv, "ann@example.com")

	status, data, _ := call(t, srv, http.MethodPost, "/pantry", token, pantryRequest{Amount: "1"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "ingredientName must not be blank", problemDetail(t, data))

	status, data, _ = call(t, srv, http.MethodPost, "/pantry", token, pantryRequest{IngredientName: "Milk"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "amount must not be blank", problemDetail(t, data))
}

func TestBadPathAndPageParams(t *testing.T) {
	srv := newTestServer(t)
	token := signupAndLogin(t, srv, "ann@example.com")

	status, _, _ := call(t, srv, http.MethodDelete, "/recipes/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _, _ = call(t, srv, http.MethodGet, "/pantry?size=0", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _, _ = call(t, srv, http.MethodPost, "/recipes", token, recipeRequest{Title: "A", Instructions: "step"})
	require.Equal(t, http.StatusCreated, status)

	status, data, _ := call(t, srv, http.MethodGet, "/recipes?page="+strconv.Itoa(math.MaxInt)+"&size=100", token, nil)
	require.Equal(t, http.StatusOK, status)
	var page pageResponse[Recipe]
	require.NoError(t, json.Unmarshal(data, &page))
	assert.Empty(t, page.Content)
	assert.Equal(t, 1, page.TotalElements)
}

func jsonNumber(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
