package cli

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/WayleX/Beerter/internal/client/client"
	"github.com/WayleX/Beerter/internal/client/guard"
	"github.com/WayleX/Beerter/internal/logging"
)

// errSignInRequired is returned by a protected view that did not run.
// The user has already been told to sign in.
var errSignInRequired = errors.New("sign in required")

// protected runs view only after the guard verified the session. Leaving
// early cancels the activation and everything view started.
func (a *App) protected(ctx context.Context, view func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// With a token present the guard asks the server.
	if a.isLoggedIn() {
		a.println("Checking session...")
	}

	var redirected atomic.Bool
	act := a.guard.Activate(ctx, func() { redirected.Store(true) })
	defer act.Cancel()

	if st := act.Wait(); st != guard.Verified {
		if redirected.Load() {
			a.userName = ""
			a.println("Please sign in")
		}
		return errSignInRequired
	}

	if v, ok := act.Result().(client.Valid); ok && a.userName == "" {
		a.userName = v.Identity.DisplayName()
	}

	err := view(ctx)
	if client.IsAuthError(err) {
		// The server turned the token down after verify let it through.
		if cerr := a.store.Clear(ctx); cerr != nil {
			a.log.Warn(ctx, "clear session", logging.Err(cerr))
		}
		a.userName = ""
		a.println("Session expired. Please sign in")
		return errSignInRequired
	}
	return err
}
