package kitchenfake

import (
	"slices"
	"strings"
	"sync"
)

type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash []byte
}

type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

type Recipe struct {
	ID          int64        `json:"id"`
	OwnerID     int64        `json:"-"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Steps       string       `json:"steps"`
	Tags        string       `json:"tags"`
	CookTimeMin *int         `json:"cookTimeMin"`
	Ingredients []Ingredient `json:"ingredients"`
}

type PantryItem struct {
	ID             int64   `json:"id"`
	OwnerID        int64   `json:"-"`
	IngredientName string  `json:"ingredientName"`
	Amount         string  `json:"amount"`
	ExpiresOn      *string `json:"expiresOn"`
}

// RecipeFilter narrows ListRecipes. Zero fields match everything.
type RecipeFilter struct {
	Text       string
	MaxTime    int
	Ingredient string
}

func (f RecipeFilter) match(r Recipe) bool {
	if f.Text != "" && !containsFold(r.Title, f.Text) && !containsFold(r.Description, f.Text) {
		return false
	}
	if f.MaxTime > 0 && (r.CookTimeMin == nil || *r.CookTimeMin > f.MaxTime) {
		return false
	}
	if f.Ingredient != "" {
		return slices.ContainsFunc(r.Ingredients, func(i Ingredient) bool {
			return containsFold(i.Name, f.Ingredient)
		})
	}
	return true
}

// PantryFilter narrows ListPantry. ExpFrom and ExpTo are inclusive
// YYYY-MM-DD bounds; items without a date never match a bound.
type PantryFilter struct {
	Ingredient string
	ExpFrom    string
	ExpTo      string
}

func (f PantryFilter) match(p PantryItem) bool {
	if f.Ingredient != "" && !containsFold(p.IngredientName, f.Ingredient) {
		return false
	}
	if f.ExpFrom == "" && f.ExpTo == "" {
		return true
	}
	if p.ExpiresOn == nil {
		return false
	}
	// ISO dates compare lexically.
	if f.ExpFrom != "" && *p.ExpiresOn < f.ExpFrom {
		return false
	}
	if f.ExpTo != "" && *p.ExpiresOn > f.ExpTo {
		return false
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// Store keeps users, recipes and pantry items in memory. It is safe for
// concurrent use.
type Store struct {
	mu sync.RWMutex

	nextID  int64
	users   map[int64]User
	byEmail map[string]int64
	recipes map[int64]Recipe
	pantry  map[int64]PantryItem
}

func NewStore() *Store {
	return &Store{
		users:   make(map[int64]User),
		byEmail: make(map[string]int64),
		recipes: make(map[int64]Recipe),
		pantry:  make(map[int64]PantryItem),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) CreateUser(email, name string, hash []byte) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := s.byEmail[key]; ok {
		return User{}, conflict("email already exists")
	}
	u := User{ID: s.id(), Email: email, Name: name, PasswordHash: hash}
	s.users[u.ID] = u
	s.byEmail[key] = u.ID
	return u, nil
}

func (s *Store) UserByEmail(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return User{}, false
	}
	return s.users[id], true
}

func (s *Store) UserByID(id int64) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// ListRecipes returns one page of the owner's recipes, newest first, plus
// the number of matches across all pages.
func (s *Store) ListRecipes(owner int64, f RecipeFilter, page, size int) ([]Recipe, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []Recipe
	for _, r := range s.recipes {
		if r.OwnerID == owner && f.match(r) {
			all = append(all, r)
		}
	}
	slices.SortFunc(all, func(a, b Recipe) int { return cmpDesc(a.ID, b.ID) })
	return paginate(all, page, size), len(all)
}

func (s *Store) GetRecipe(owner, id int64) (Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.recipes[id]
	if !ok || r.OwnerID != owner {
		return Recipe{}, notFound("recipe", id)
	}
	return r, nil
}

func (s *Store) CreateRecipe(owner int64, r Recipe) Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.id()
	r.OwnerID = owner
	if r.Ingredients == nil {
		r.Ingredients = []Ingredient{}
	}
	s.recipes[r.ID] = r
	return r
}

// UpdateRecipe applies fn to a copy of the recipe and stores the result.
func (s *Store) UpdateRecipe(owner, id int64, fn func(*Recipe) error) (Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recipes[id]
	if !ok || r.OwnerID != owner {
		return Recipe{}, notFound("recipe", id)
	}
	if err := fn(&r); err != nil {
		return Recipe{}, err
	}
	s.recipes[id] = r
	return r, nil
}

func (s *Store) DeleteRecipe(owner, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recipes[id]
	if !ok || r.OwnerID != owner {
		return notFound("recipe", id)
	}
	delete(s.recipes, id)
	return nil
}

// ListPantry returns one page of the owner's pantry, newest first, plus the
// number of matches across all pages.
func (s *Store) ListPantry(owner int64, f PantryFilter, page, size int) ([]PantryItem, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []PantryItem
	for _, p := range s.pantry {
		if p.OwnerID == owner && f.match(p) {
			all = append(all, p)
		}
	}
	slices.SortFunc(all, func(a, b PantryItem) int { return cmpDesc(a.ID, b.ID) })
	return paginate(all, page, size), len(all)
}

func (s *Store) CreatePantryItem(owner int64, p PantryItem) PantryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	p.OwnerID = owner
	s.pantry[p.ID] = p
	return p
}

// UpdatePantryItem applies fn to a copy of the item and stores the result.
func (s *Store) UpdatePantryItem(owner, id int64, fn func(*PantryItem) error) (PantryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pantry[id]
	if !ok || p.OwnerID != owner {
		return PantryItem{}, notFound("pantry item", id)
	}
	if err := fn(&p); err != nil {
		return PantryItem{}, err
	}
	s.pantry[id] = p
	return p, nil
}

func (s *Store) DeletePantryItem(owner, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pantry[id]
	if !ok || p.OwnerID != owner {
		return notFound("pantry item", id)
	}
	delete(s.pantry, id)
	return nil
}

func cmpDesc(a, b int64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}

func paginate[T any](items []T, page, size int) []T {
	if page < 0 || size <= 0 || page > len(items)/size {
		return []T{}
	}
	start := page * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}
