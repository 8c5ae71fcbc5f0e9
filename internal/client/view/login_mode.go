package view

// LoginMode selects which of the two login-page forms is active.
type LoginMode int

const (
	SignIn LoginMode = iota
	SignUp
)

func (m LoginMode) Toggle() LoginMode {
	if m == SignUp {
		return SignIn
	}
	return SignUp
}

func (m LoginMode) String() string {
	if m == SignUp {
		return "signup"
	}
	return "signin"
}

// LoginForm is everything on the login page that depends on the mode.
type LoginForm struct {
	Heading       string
	SubmitLabel   string
	ToggleLabel   string
	NameVisible   bool
	NameRequired  bool
	EmailRequired bool
}

// Form returns the labels and required flags for m.
func (m LoginMode) Form() LoginForm {
	if m == SignUp {
		return LoginForm{
			Heading:       "Create your account",
			SubmitLabel:   "Sign up",
			ToggleLabel:   "Already have an account? Sign in",
			NameVisible:   true,
			NameRequired:  true,
			EmailRequired: true,
		}
	}
	return LoginForm{
		Heading:       "Sign in to your account",
		SubmitLabel:   "Sign in",
		ToggleLabel:   "Don't have an account? Sign up",
		EmailRequired: true,
	}
}
