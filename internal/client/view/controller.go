// Package view tracks which page of the client is showing.
//
// Pages form a small state machine: LoggedOut, Dashboard, Recipes, Pantry.
// The three main sections are mutually exclusive: showing one hides the
// others first. The sign-in / sign-up mode of the login form and the open
// modal form are separate state that never moves the page.
//
// Every navigation issues a fresh Ticket. Loaders capture the ticket before
// fetching and call Current before rendering, so a slow response for a page
// the user already left is dropped instead of painting over the new one.
package view

import (
	"sync"

	"github.com/google/uuid"
)

type Page int

const (
	LoggedOut Page = iota
	Dashboard
	Recipes
	Pantry
)

func (p Page) String() string {
	switch p {
	case Dashboard:
		return "dashboard"
	case Recipes:
		return "recipes"
	case Pantry:
		return "pantry"
	default:
		return "login"
	}
}

// Section is one of the mutually exclusive main-content sections.
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionRecipes   Section = "recipes"
	SectionPantry    Section = "pantry"
)

// Sections lists the main sections in display order.
var Sections = []Section{SectionDashboard, SectionRecipes, SectionPantry}

// Form identifies a modal form.
type Form string

const (
	NoForm     Form = ""
	RecipeForm Form = "recipe"
	PantryForm Form = "pantry"
)

// Ticket identifies one navigation.
type Ticket string

type Controller struct {
	mu       sync.Mutex
	page     Page
	visible  map[Section]bool
	mode     LoginMode
	form     Form
	ticket   Ticket
	userName string
}

// NewController starts on the dashboard when loggedIn, else on the login page.
func NewController(loggedIn bool, userName string) *Controller {
	c := &Controller{visible: make(map[Section]bool, len(Sections))}
	if loggedIn {
		c.userName = userName
		c.show(Dashboard)
	} else {
		c.logout()
	}
	return c
}

func (c *Controller) Page() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller) LoggedIn() bool {
	return c.Page() != LoggedOut
}

// UserName is the greeting name of the logged-in user, "" when logged out.
func (c *Controller) UserName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userName
}

// Visible reports whether s is currently shown.
func (c *Controller) Visible(s Section) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible[s]
}

// VisibleSections returns the shown sections in display order.
func (c *Controller) VisibleSections() []Section {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Section
	for _, s := range Sections {
		if c.visible[s] {
			out = append(out, s)
		}
	}
	return out
}

// LoginSucceeded moves from the login page to the dashboard.
func (c *Controller) LoginSucceeded(userName string) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userName = userName
	c.mode = SignIn
	return c.show(Dashboard)
}

// ShowDashboard, ShowRecipes and ShowPantry navigate between the main pages.
// They are no-ops returning "" while logged out.
func (c *Controller) ShowDashboard() Ticket { return c.navigate(Dashboard) }
func (c *Controller) ShowRecipes() Ticket   { return c.navigate(Recipes) }
func (c *Controller) ShowPantry() Ticket    { return c.navigate(Pantry) }

func (c *Controller) navigate(p Page) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page == LoggedOut {
		return ""
	}
	return c.show(p)
}

// Logout returns to the login page from anywhere; used both for an explicit
// logout and for authorization failures.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logout()
}

// Current reports whether t is still the latest navigation.
func (c *Controller) Current(t Ticket) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return t != "" && t == c.ticket
}

// Ticket returns the latest navigation ticket.
func (c *Controller) Ticket() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticket
}

// OpenForm opens f. Only one form is open at a time.
func (c *Controller) OpenForm(f Form) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = f
}

func (c *Controller) CloseForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = NoForm
}

func (c *Controller) OpenedForm() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// LoginMode returns the current sign-in / sign-up mode.
func (c *Controller) LoginMode() LoginMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// ToggleLoginMode flips between sign-in and sign-up and returns the new
// form labels.
func (c *Controller) ToggleLoginMode() LoginForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = c.mode.Toggle()
	return c.mode.Form()
}

func (c *Controller) show(p Page) Ticket {
	for _, s := range Sections {
		c.visible[s] = false
	}
	switch p {
	case Dashboard:
		c.visible[SectionDashboard] = true
	case Recipes:
		c.visible[SectionRecipes] = true
	case Pantry:
		c.visible[SectionPantry] = true
	}
	c.page = p
	c.form = NoForm
	c.ticket = Ticket(uuid.NewString())
	return c.ticket
}

func (c *Controller) logout() {
	c.show(LoggedOut)
	c.userName = ""
	c.mode = SignIn
}
