package models

// UserProfile is the cached identity of the logged-in user.
type UserProfile struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the client-held proof of authentication plus the cached profile.
// A Session always carries both a token and a user.
type Session struct {
	Token string
	User  UserProfile
}

// LoginResult is the body returned by POST /auth/login.
type LoginResult struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Profile extracts the UserProfile part of a login response.
func (r LoginResult) Profile() UserProfile {
	return UserProfile{ID: r.UserID, Email: r.Email, Name: r.Name}
}

// Credentials are the fields of the login / signup form. Name is only sent
// on signup.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}
