package services

import (
	"context"
	"fmt"

	"github.com/WayleX/Beerter/internal/client/client"
	"github.com/WayleX/Beerter/internal/client/models"
	"github.com/WayleX/Beerter/internal/client/session"
	"github.com/WayleX/Beerter/internal/common"
	"github.com/WayleX/Beerter/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account on the server.
//   - Login: authenticate and store the access token in the session.
//   - Logout: tell the server (best effort) and always clear the session.
//   - Whoami: ask the server who the stored token belongs to.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, req models.LoginRequest) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) (*Whoami, error)
}

// Whoami combines the server's view of the session with what the token
// itself claims.
type Whoami struct {
	Identity models.Identity
	// Token is nil when the access token is not a readable JWT.
	Token *TokenInfo
}

type authService struct {
	client client.Client
	store  session.Store
	log    logging.Logger
}

func NewAuthService(c client.Client, store session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &authService{client: c, store: store, log: log.With("service", "auth")}
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if err := a.client.Register(ctx, req); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (a *authService) Login(ctx context.Context, req models.LoginRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	token, err := a.client.Login(ctx, req)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := a.store.Set(ctx, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	a.log.Info(ctx, "signed in", "email", req.Email)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if _, ok := a.store.Get(); ok {
		if err := a.client.Logout(ctx); err != nil {
			a.log.Warn(ctx, "remote logout failed", logging.Err(err))
		}
	}
	return a.store.Clear(ctx)
}

// Whoami verifies the stored token. A token the server rejects is dropped
// from the session and reported as common.ErrInvalidToken.
func (a *authService) Whoami(ctx context.Context) (*Whoami, error) {
	token, ok := a.store.Get()
	if !ok {
		return nil, common.ErrNoToken
	}

	switch r := a.client.Verify(ctx, token).(type) {
	case client.Valid:
		w := &Whoami{Identity: r.Identity}
		if info, err := ParseTokenInfo(token); err == nil {
			w.Token = &info
		}
		return w, nil
	case client.Invalid:
		if err := a.store.Clear(ctx); err != nil {
			a.log.Warn(ctx, "clear session", logging.Err(err))
		}
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidToken, r.Reason)
	case client.TransportError:
		return nil, fmt.Errorf("verify: %w", r.Err)
	default:
		return nil, fmt.Errorf("verify: unexpected result %T", r)
	}
}
