package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/kitchenkeeper/internal/client/api"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/models"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/services"
	"github.com/dmitrijs2005/kitchenkeeper/internal/client/view"
)

var errFieldRequired = errors.New("required field is empty")

func (a *App) showLoginForm() {
	if err := a.render.LoginForm(a.out, a.ctrl.LoginMode().Form()); err != nil {
		a.log.Error(context.Background(), "render login form", "error", err)
	}
}

// ToggleMode switches between the sign-in and sign-up forms.
func (a *App) ToggleMode(ctx context.Context) error {
	a.ctrl.ToggleLoginMode()
	a.showLoginForm()
	return nil
}

// Signup switches to the sign-up form if needed and submits it.
func (a *App) Signup(ctx context.Context) error {
	if a.ctrl.LoginMode() != view.SignUp {
		a.ctrl.ToggleLoginMode()
	}
	return a.Login(ctx)
}

// Login submits the login page in its current mode. On failure the server's
// detail is printed verbatim and the user stays on the login page.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.println("Already logged in as", a.ctrl.UserName())
		return nil
	}
	form := a.ctrl.LoginMode().Form()
	a.printf("== %s ==\n", form.Heading)

	var creds models.Credentials
	var err error
	if form.NameVisible {
		if creds.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
			return err
		}
		if form.NameRequired && creds.Name == "" {
			a.println("Name is required.")
			return errFieldRequired
		}
	}
	if creds.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.EmailRequired && creds.Email == "" {
		a.println("Email is required.")
		return errFieldRequired
	}
	pw, err := a.password()
	if err != nil {
		a.log.Error(ctx, "read password", "error", err)
		return err
	}
	creds.Password = string(pw)

	var user models.UserProfile
	if form.NameVisible {
		user, err = a.authService.Signup(ctx, creds)
	} else {
		user, err = a.authService.Login(ctx, creds.Email, creds.Password)
	}
	if err != nil {
		a.log.Warn(ctx, "authentication failed", "mode", a.ctrl.LoginMode().String(), "error", err)
		a.println(api.Detail(err, services.AuthFailedMessage))
		return err
	}

	a.printf("%s successful. Welcome, %s!\n", form.SubmitLabel, user.Name)
	t := a.ctrl.LoginSucceeded(user.Name)
	_ = a.loaders.Dashboard(ctx, t)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout", "error", err)
		return err
	}
	a.ctrl.Logout()
	a.println("Logged out.")
	a.showLoginForm()
	return nil
}

// Whoami asks the server who the stored token belongs to.
func (a *App) Whoami(ctx context.Context) error {
	u, err := a.authService.Whoami(ctx)
	if err != nil {
		a.log.Error(ctx, "whoami", "error", err)
		return err
	}
	a.printf("%s <%s> (id %d)\n", u.Name, u.Email, u.ID)
	return nil
}
