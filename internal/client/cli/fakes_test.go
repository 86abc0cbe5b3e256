package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WayleX/Beerter/internal/client/client"
	"github.com/WayleX/Beerter/internal/client/guard"
	"github.com/WayleX/Beerter/internal/client/models"
	"github.com/WayleX/Beerter/internal/client/services"
	"github.com/WayleX/Beerter/internal/client/session"
	"github.com/WayleX/Beerter/internal/logging"
)

// ---- verifier ----

type verifierFunc func(ctx context.Context, token string) client.VerifyResult

func (f verifierFunc) Verify(ctx context.Context, token string) client.VerifyResult {
	return f(ctx, token)
}

type countingVerifier struct {
	calls  atomic.Int32
	result client.VerifyResult
}

func (c *countingVerifier) Verify(context.Context, string) client.VerifyResult {
	c.calls.Add(1)
	return c.result
}

// ---- services ----

type fakeAuth struct {
	regReq models.RegisterRequest
	regErr error

	loginReq models.LoginRequest
	loginErr error
	store    session.Store

	logoutCalled bool
	logoutErr    error

	whoami    *services.Whoami
	whoamiErr error
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) error {
	f.regReq = req
	return f.regErr
}

func (f *fakeAuth) Login(ctx context.Context, req models.LoginRequest) error {
	f.loginReq = req
	if f.loginErr != nil {
		return f.loginErr
	}
	if f.store != nil {
		return f.store.Set(ctx, "issued")
	}
	return nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logoutCalled = true
	if f.store != nil {
		_ = f.store.Clear(ctx)
	}
	return f.logoutErr
}

func (f *fakeAuth) Whoami(context.Context) (*services.Whoami, error) {
	return f.whoami, f.whoamiErr
}

type fakeReviews struct {
	calls []string

	feed    *models.Feed
	list    []models.Review
	review  *models.Review
	likes   []string
	err     error
	lastNew models.NewReview
	lastID  string
	lastUpd models.ReviewUpdate
}

func (f *fakeReviews) rec(name string) { f.calls = append(f.calls, name) }

func (f *fakeReviews) Feed(context.Context) (*models.Feed, error) {
	f.rec("Feed")
	return f.feed, f.err
}
func (f *fakeReviews) RefreshFeed(context.Context) error { f.rec("RefreshFeed"); return f.err }
func (f *fakeReviews) Mine(context.Context) ([]models.Review, error) {
	f.rec("Mine")
	return f.list, f.err
}
func (f *fakeReviews) Recent(context.Context) ([]models.Review, error) {
	f.rec("Recent")
	return f.list, f.err
}
func (f *fakeReviews) Get(_ context.Context, id string) (*models.Review, error) {
	f.rec("Get")
	f.lastID = id
	return f.review, f.err
}
func (f *fakeReviews) Post(_ context.Context, r models.NewReview) (*models.Review, error) {
	f.rec("Post")
	f.lastNew = r
	return f.review, f.err
}
func (f *fakeReviews) Edit(_ context.Context, id string, u models.ReviewUpdate) (*models.Review, error) {
	f.rec("Edit")
	f.lastID = id
	f.lastUpd = u
	return f.review, f.err
}
func (f *fakeReviews) Search(_ context.Context, kw string) ([]models.Review, error) {
	f.rec("Search")
	f.lastID = kw
	return f.list, f.err
}
func (f *fakeReviews) ByProduct(_ context.Context, id string) ([]models.Review, error) {
	f.rec("ByProduct")
	f.lastID = id
	return f.list, f.err
}
func (f *fakeReviews) Like(_ context.Context, id string) error {
	f.rec("Like")
	f.lastID = id
	return f.err
}
func (f *fakeReviews) Unlike(_ context.Context, id string) error {
	f.rec("Unlike")
	f.lastID = id
	return f.err
}
func (f *fakeReviews) Likes(context.Context) ([]string, error) {
	f.rec("Likes")
	return f.likes, f.err
}

type fakeBeers struct {
	beers []models.Beer
	names []string
	err   error
}

func (f *fakeBeers) List(context.Context) ([]models.Beer, error) { return f.beers, f.err }
func (f *fakeBeers) Names(context.Context) ([]string, error)     { return f.names, f.err }

type fakeDashboard struct {
	d services.Dashboard
}

func (f *fakeDashboard) Load(context.Context) *services.Dashboard {
	d := f.d
	return &d
}

// ---- app ----

type testApp struct {
	*App
	out      *bytes.Buffer
	store    *session.Session
	verifier *countingVerifier
	auth     *fakeAuth
	reviews  *fakeReviews
	beers    *fakeBeers
	dash     *fakeDashboard
}

// newTestApp builds an App over fakes. token pre-populates the session;
// verdict is what the server says about it; input feeds the prompts.
func newTestApp(t *testing.T, token string, verdict client.VerifyResult, input string) *testApp {
	t.Helper()

	store := session.NewEphemeral()
	if token != "" {
		require.NoError(t, store.Set(context.Background(), token))
	}

	ta := &testApp{
		out:      &bytes.Buffer{},
		store:    store,
		verifier: &countingVerifier{result: verdict},
		auth:     &fakeAuth{store: store},
		reviews:  &fakeReviews{},
		beers:    &fakeBeers{},
		dash:     &fakeDashboard{},
	}
	ta.App = &App{
		authService:   ta.auth,
		beerService:   ta.beers,
		reviewService: ta.reviews,
		dashboard:     ta.dash,
		guard:         guard.New(store, ta.verifier, nil),
		store:         store,
		log:           logging.NewNopLogger(),
		reader:        bufio.NewReader(strings.NewReader(input)),
		out:           ta.out,
	}
	return ta
}

func (ta *testApp) output() string { return ta.out.String() }
