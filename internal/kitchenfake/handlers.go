package kitchenfake

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/kitchenkeeper/internal/kitchenfake/auth"
	"github.com/dmitrijs2005/kitchenkeeper/internal/logging"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	dateLayout      = "2006-01-02"
)

type handler struct {
	store      *Store
	secret     []byte
	validity   time.Duration
	bcryptCost int
	log        logging.Logger
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

type pageResponse[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
	Size          int `json:"size"`
}

func newPage[T any](content []T, total, page, size int) pageResponse[T] {
	return pageResponse[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    (total + size - 1) / size,
		Number:        page,
		Size:          size,
	}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return invalid("malformed JSON body")
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid("id must be a positive integer")
	}
	return id, nil
}

func pageParams(r *http.Request) (int, int, error) {
	q := r.URL.Query()
	page, size := 0, defaultPageSize
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, invalid("page must be a non-negative integer")
		}
		page = n
	}
	if v := q.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return 0, 0, invalid("size must be a positive integer")
		}
		size = min(n, maxPageSize)
	}
	return page, size, nil
}

func checkDate(field string, v *string) error {
	if v == nil || *v == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, *v); err != nil {
		return invalid(field + " must be YYYY-MM-DD")
	}
	return nil
}

// ---- auth ----

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *handler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, r, err)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	switch {
	case req.Email == "":
		writeProblem(w, r, invalid("email must not be blank"))
		return
	case !validEmail(req.Email):
		writeProblem(w, r, invalid("email must be a valid address"))
		return
	case len(req.Password) < 6:
		writeProblem(w, r, invalid("password must be at least 6 characters"))
		return
	case req.Name == "":
		writeProblem(w, r, invalid("name must not be blank"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.bcryptCost)
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	u, err := h.store.CreateUser(req.Email, req.Name, hash)
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	h.log.Info(r.Context(), "user signed up", "user_id", u.ID)
	writeJSON(w, http.StatusCreated, userResponse{ID: u.ID, Email: u.Email, Name: u.Name})
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, r, err)
		return
	}

	u, ok := h.store.UserByEmail(strings.TrimSpace(req.Email))
	if !ok || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		writeProblem(w, r, unauthorized("invalid email or password"))
		return
	}

	token, err := auth.GenerateToken(u.ID, h.secret, h.validity)
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, UserID: u.ID, Email: u.Email, Name: u.Name})
}

func (h *handler) me(w http.ResponseWriter, r *http.Request) {
	uid := mustUserID(r)
	u, ok := h.store.UserByID(uid)
	if !ok {
		writeProblem(w, r, unauthorized("user no longer exists"))
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: u.ID, Email: u.Email, Name: u.Name})
}

// ---- recipes ----

type recipeRequest struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Steps        string       `json:"steps"`
	Instructions string       `json:"instructions"`
	Tags         string       `json:"tags"`
	CookTimeMin  *int         `json:"cookTimeMin"`
	Ingredients  []Ingredient `json:"ingredients"`
}

func (h *handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	page, size, err := pageParams(r)
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	q := r.URL.Query()
	f := RecipeFilter{Text: q.Get("q"), Ingredient: q.Get("ingredient")}
	if v := q.Get("maxTime"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeProblem(w, r, invalid("maxTime must be a non-negative integer"))
			return
		}
		f.MaxTime = n
	}

	content, total := h.store.ListRecipes(mustUserID(r), f, page, size)
	writeJSON(w, http.StatusOK, newPage(content, total, page, size))
}

func (h *handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	rec, err := h.store.GetRecipe(mustUserID(r), id)
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, r, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeProblem(w, r, invalid("title must not be blank"))
		return
	}
	if req.CookTimeMin != nil && *req.CookTimeMin < 0 {
		writeProblem(w, r, invalid("cookTimeMin must not be negative"))
		return
	}
	for _, ing := range req.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			writeProblem(w, r, invalid("ingredient name must not be blank"))
			return
		}
	}

	steps := req.Steps
	if steps == "" {
		steps = req.Instructions
	}
	rec := h.store.CreateRecipe(mustUserID(r), Recipe{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Steps:       steps,
		Tags:        req.Tags,
		CookTimeMin: req.CookTimeMin,
		Ingredients: req.Ingredients,
	})
	writeJSON(w, http.StatusCreated, rec)
}

type recipePatch struct {
	Title       *string `json:"title"`
	Steps       *string `json:"steps"`
	CookTimeMin *int    `json:"cookTimeMin"`
	Tags        *string `json:"tags"`
}

func (h *handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	var req recipePatch
	if err := decode(r, &req); err != nil {
		writeProblem(w, r, err)
		return
	}

	rec, err := h.store.UpdateRecipe(mustUserID(r), id, func(rec *Recipe) error {
		if req.Title != nil {
			if strings.TrimSpace(*req.Title) == "" {
				return invalid("title must not be blank")
			}
			rec.Title = strings.TrimSpace(*req.Title)
		}
		if req.Steps != nil {
			rec.Steps = *req.Steps
		}
		if req.CookTimeMin != nil {
			if *req.CookTimeMin < 0 {
				return invalid("cookTimeMin must not be negative")
			}
			rec.CookTimeMin = req.CookTimeMin
		}
		if req.Tags != nil {
			rec.Tags = *req.Tags
		}
		return nil
	})
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	if err := h.store.DeleteRecipe(mustUserID(r), id); err != nil {
		writeProblem(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- pantry ----

type pantryRequest struct {
	IngredientName string  `json:"ingredientName"`
	Amount         string  `json:"amount"`
	ExpiresOn      *string `json:"expiresOn"`
}

func (h *handler) listPantry(w http.ResponseWriter, r *http.Request) {
	page, size, err := pageParams(r)
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	q := r.URL.Query()
	f := PantryFilter{Ingredient: q.Get("ingredient"), ExpFrom: q.Get("expFrom"), ExpTo: q.Get("expTo")}
	if err := checkDate("expFrom", &f.ExpFrom); err != nil {
		writeProblem(w, r, err)
		return
	}
	if err := checkDate("expTo", &f.ExpTo); err != nil {
		writeProblem(w, r, err)
		return
	}

	content, total := h.store.ListPantry(mustUserID(r), f, page, size)
	writeJSON(w, http.StatusOK, newPage(content, total, page, size))
}

func (h *handler) createPantryItem(w http.ResponseWriter, r *http.Request) {
	var req pantryRequest
	if err := decode(r, &req); err != nil {
		writeProblem(w, r, err)
		return
	}
	switch {
	case strings.TrimSpace(req.IngredientName) == "":
		writeProblem(w, r, invalid("ingredientName must not be blank"))
		return
	case strings.TrimSpace(req.Amount) == "":
		writeProblem(w, r, invalid("amount must not be blank"))
		return
	}
	if err := checkDate("expiresOn", req.ExpiresOn); err != nil {
		writeProblem(w, r, err)
		return
	}
	if req.ExpiresOn != nil && *req.ExpiresOn == "" {
		req.ExpiresOn = nil
	}

	item := h.store.CreatePantryItem(mustUserID(r), PantryItem{
		IngredientName: strings.TrimSpace(req.IngredientName),
		Amount:         strings.TrimSpace(req.Amount),
		ExpiresOn:      req.ExpiresOn,
	})
	writeJSON(w, http.StatusCreated, item)
}

type pantryPatch struct {
	Amount    *string `json:"amount"`
	ExpiresOn *string `json:"expiresOn"`
}

func (h *handler) updatePantryItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	var req pantryPatch
	if err := decode(r, &req); err != nil {
		writeProblem(w, r, err)
		return
	}
	if err := checkDate("expiresOn", req.ExpiresOn); err != nil {
		writeProblem(w, r, err)
		return
	}

	item, err := h.store.UpdatePantryItem(mustUserID(r), id, func(p *PantryItem) error {
		if req.Amount != nil {
			if strings.TrimSpace(*req.Amount) == "" {
				return invalid("amount must not be blank")
			}
			p.Amount = strings.TrimSpace(*req.Amount)
		}
		if req.ExpiresOn != nil {
			p.ExpiresOn = req.ExpiresOn
		}
		return nil
	})
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *handler) deletePantryItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	if err := h.store.DeletePantryItem(mustUserID(r), id); err != nil {
		writeProblem(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
