package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WayleX/Beerter/internal/client/client"
	"github.com/WayleX/Beerter/internal/client/models"
	"github.com/WayleX/Beerter/internal/client/session"
	"github.com/WayleX/Beerter/internal/common"
)

// ---- helpers ----

type brokenBackend struct {
	session.MemoryBackend
	saveErr error
}

func (b *brokenBackend) Save(ctx context.Context, token string) error {
	if b.saveErr != nil {
		return b.saveErr
	}
	return b.MemoryBackend.Save(ctx, token)
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func storeWith(t *testing.T, token string) *session.Session {
	t.Helper()
	s := session.NewEphemeral()
	if token != "" {
		require.NoError(t, s.Set(context.Background(), token))
	}
	return s
}

// ---- Register ----

func TestRegister_OK(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, storeWith(t, ""), nil)

	req := models.RegisterRequest{Nickname: "al", Email: "al@example.com", Password: "pw"}
	require.NoError(t, svc.Register(context.Background(), req))
	assert.Equal(t, req, fc.LastRegister)
}

func TestRegister_Validation(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, storeWith(t, ""), nil)

	err := svc.Register(context.Background(), models.RegisterRequest{Nickname: "al", Email: "not-an-email", Password: "pw"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "email must be a valid email address")
	assert.Empty(t, fc.called())
}

func TestRegister_ServerError(t *testing.T) {
	fc := &fakeClient{RegisterErr: &client.APIError{Status: 400, Message: "Email already registered"}}
	svc := NewAuthService(fc, storeWith(t, ""), nil)

	err := svc.Register(context.Background(), models.RegisterRequest{Nickname: "al", Email: "al@example.com", Password: "pw"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Email already registered", apiErr.Message)
}

// ---- Login ----

func TestLogin_StoresToken(t *testing.T) {
	fc := &fakeClient{LoginRet: "tok"}
	store := storeWith(t, "")
	svc := NewAuthService(fc, store, nil)

	require.NoError(t, svc.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "pw"}))
	tok, ok := store.Get()
	require.True(t, ok)
	assert.Equal(t, "tok", tok)
}

func TestLogin_MissingAccessToken(t *testing.T) {
	fc := &fakeClient{LoginErr: common.ErrNoAccessToken}
	store := storeWith(t, "old")
	svc := NewAuthService(fc, store, nil)

	err := svc.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.ErrorIs(t, err, common.ErrNoAccessToken)
	tok, _ := store.Get()
	assert.Equal(t, "old", tok)
}

func TestLogin_Unauthorized(t *testing.T) {
	fc := &fakeClient{LoginErr: &client.APIError{Status: 401, Message: "Invalid credentials"}}
	svc := NewAuthService(fc, storeWith(t, ""), nil)

	err := svc.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "bad"})
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestLogin_StoreFailure(t *testing.T) {
	fc := &fakeClient{LoginRet: "tok"}
	store, err := session.Open(context.Background(), &brokenBackend{saveErr: errors.New("read-only")})
	require.NoError(t, err)
	svc := NewAuthService(fc, store, nil)

	err = svc.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.Error(t, err)
	assert.False(t, store.Authenticated())
}

func TestLogin_Validation(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, storeWith(t, ""), nil)

	err := svc.Login(context.Background(), models.LoginRequest{Email: "a@b.c"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "password is required")
	assert.Empty(t, fc.called())
}

// ---- Logout ----

func TestLogout_ClearsEvenWhenRemoteFails(t *testing.T) {
	fc := &fakeClient{LogoutErr: client.ErrUnavailable}
	store := storeWith(t, "tok")
	svc := NewAuthService(fc, store, nil)

	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, store.Authenticated())
	assert.Equal(t, []string{"Logout"}, fc.called())
}

func TestLogout_NoTokenSkipsRemote(t *testing.T) {
	fc := &fakeClient{}
	store := storeWith(t, "")
	svc := NewAuthService(fc, store, nil)

	require.NoError(t, svc.Logout(context.Background()))
	require.NoError(t, svc.Logout(context.Background()))
	assert.Empty(t, fc.called())
}

// ---- Whoami ----

func TestWhoami_NoToken(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, storeWith(t, ""), nil)

	_, err := svc.Whoami(context.Background())
	require.ErrorIs(t, err, common.ErrNoToken)
	assert.Empty(t, fc.called())
}

func TestWhoami_ValidWithJWT(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "al@example.com", "exp": exp.Unix()})

	fc := &fakeClient{VerifyRet: client.Valid{Identity: models.Identity{Email: "al@example.com", Nickname: "al"}}}
	svc := NewAuthService(fc, storeWith(t, token), nil)

	w, err := svc.Whoami(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token, fc.LastVerifyToken)
	assert.Equal(t, "al", w.Identity.DisplayName())
	require.NotNil(t, w.Token)
	assert.Equal(t, "al@example.com", w.Token.Subject)
	assert.True(t, w.Token.ExpiresAt.Equal(exp))
}

func TestWhoami_OpaqueToken(t *testing.T) {
	fc := &fakeClient{VerifyRet: client.Valid{}}
	svc := NewAuthService(fc, storeWith(t, "opaque"), nil)

	w, err := svc.Whoami(context.Background())
	require.NoError(t, err)
	assert.Nil(t, w.Token)
}

func TestWhoami_InvalidClearsSession(t *testing.T) {
	fc := &fakeClient{VerifyRet: client.Invalid{Reason: "Invalid token"}}
	store := storeWith(t, "tok")
	svc := NewAuthService(fc, store, nil)

	_, err := svc.Whoami(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidToken)
	assert.False(t, store.Authenticated())
}

func TestWhoami_TransportErrorKeepsSession(t *testing.T) {
	fc := &fakeClient{VerifyRet: client.TransportError{Err: client.ErrUnavailable}}
	store := storeWith(t, "tok")
	svc := NewAuthService(fc, store, nil)

	_, err := svc.Whoami(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.True(t, store.Authenticated())
}

// ---- TokenInfo ----

func TestParseTokenInfo_EmailClaimFallback(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"email": "x@y.z"})
	info, err := ParseTokenInfo(token)
	require.NoError(t, err)
	assert.Equal(t, "x@y.z", info.Subject)
	assert.True(t, info.ExpiresAt.IsZero())
	assert.False(t, info.Expired(time.Now()))
}

func TestParseTokenInfo_ExpiredStillParses(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "u", "exp": time.Now().Add(-time.Hour).Unix()})
	info, err := ParseTokenInfo(token)
	require.NoError(t, err)
	assert.True(t, info.Expired(time.Now()))
}

func TestParseTokenInfo_Garbage(t *testing.T) {
	_, err := ParseTokenInfo("not-a-jwt")
	assert.Error(t, err)
}
