package cli

import (
	"context"
	"time"

	"github.com/WayleX/Beerter/internal/client/models"
	"github.com/WayleX/Beerter/internal/common"
)

// getSimpleText, getPassword, getMultiline and getNumber are indirections
// used to facilitate testing. They point to interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	getNumber     = GetNumber
)

// Register prompts for nickname, email and password and creates an account.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	nickname, err := getSimpleText(a.reader, "Enter nickname", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	req := models.RegisterRequest{Nickname: nickname, Email: email, Password: string(password)}
	if err := a.authService.Register(ctx, req); err != nil {
		return err
	}

	a.println("Registered. You can now sign in with 'login'.")
	return nil
}

// Login prompts for credentials and stores the issued token in the session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, models.LoginRequest{Email: email, Password: string(password)}); err != nil {
		return err
	}

	a.userName = email
	a.println("Signed in")
	return nil
}

// Logout ends the session. The local token is gone even if the server
// could not be told.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	a.println("Signed out")
	return nil
}

// Whoami shows who the server thinks the stored token belongs to.
func (a *App) Whoami(ctx context.Context) error {
	w, err := a.authService.Whoami(ctx)
	if err != nil {
		return err
	}

	a.userName = w.Identity.DisplayName()
	a.printf("Nickname: %s\n", w.Identity.Nickname)
	a.printf("Email:    %s\n", w.Identity.Email)
	if w.Identity.UserID != "" {
		a.printf("User ID:  %s\n", w.Identity.UserID)
	}
	if w.Token != nil && !w.Token.ExpiresAt.IsZero() {
		a.printf("Token expires: %s\n", w.Token.ExpiresAt.Local().Format(time.RFC1123))
		if w.Token.Expired(time.Now()) {
			a.println("Token expired locally")
		}
	}
	return nil
}
