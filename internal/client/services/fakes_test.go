package services

import (
	"context"
	"sync"

	"github.com/WayleX/Beerter/internal/client/client"
	"github.com/WayleX/Beerter/internal/client/models"
)

// fakeClient implements client.Client for service unit tests. Each method
// records its input and returns the preset result.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	RegisterErr error
	LastRegister models.RegisterRequest

	LoginRet  string
	LoginErr  error
	LastLogin models.LoginRequest

	VerifyRet       client.VerifyResult
	LastVerifyToken string

	LogoutErr error

	BeersRet []models.Beer
	BeersErr error
	NamesRet []string
	NamesErr error

	ReviewRet *models.Review
	ReviewErr error
	LastNew   models.NewReview
	LastID    string
	LastEdit  models.ReviewUpdate

	ListRet     []models.Review
	ListErr     error
	LastKeyword string

	FeedRet    *models.Feed
	FeedErr    error
	RefreshErr error

	LikeErr  error
	LikesRet []string
	LikesErr error
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) called() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) error {
	f.record("Register")
	f.LastRegister = req
	return f.RegisterErr
}

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (string, error) {
	f.record("Login")
	f.LastLogin = req
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Verify(_ context.Context, token string) client.VerifyResult {
	f.record("Verify")
	f.LastVerifyToken = token
	return f.VerifyRet
}

func (f *fakeClient) Logout(context.Context) error {
	f.record("Logout")
	return f.LogoutErr
}

func (f *fakeClient) GetAllBeers(context.Context) ([]models.Beer, error) {
	f.record("GetAllBeers")
	return append([]models.Beer(nil), f.BeersRet...), f.BeersErr
}

func (f *fakeClient) GetBeerNames(context.Context) ([]string, error) {
	f.record("GetBeerNames")
	return f.NamesRet, f.NamesErr
}

func (f *fakeClient) PostReview(_ context.Context, r models.NewReview) (*models.Review, error) {
	f.record("PostReview")
	f.LastNew = r
	return f.ReviewRet, f.ReviewErr
}

func (f *fakeClient) GetReview(_ context.Context, id string) (*models.Review, error) {
	f.record("GetReview")
	f.LastID = id
	return f.ReviewRet, f.ReviewErr
}

func (f *fakeClient) EditReview(_ context.Context, id string, u models.ReviewUpdate) (*models.Review, error) {
	f.record("EditReview")
	f.LastID = id
	f.LastEdit = u
	return f.ReviewRet, f.ReviewErr
}

func (f *fakeClient) GetReviewsByUser(context.Context) ([]models.Review, error) {
	f.record("GetReviewsByUser")
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetRecentReviews(context.Context) ([]models.Review, error) {
	f.record("GetRecentReviews")
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetReviewsByProduct(_ context.Context, productID string) ([]models.Review, error) {
	f.record("GetReviewsByProduct")
	f.LastID = productID
	return f.ListRet, f.ListErr
}

func (f *fakeClient) SearchReviews(_ context.Context, keyword string) ([]models.Review, error) {
	f.record("SearchReviews")
	f.LastKeyword = keyword
	return f.ListRet, f.ListErr
}

func (f *fakeClient) GetFeed(context.Context) (*models.Feed, error) {
	f.record("GetFeed")
	return f.FeedRet, f.FeedErr
}

func (f *fakeClient) RefreshFeed(context.Context) error {
	f.record("RefreshFeed")
	return f.RefreshErr
}

func (f *fakeClient) Like(_ context.Context, id string) error {
	f.record("Like")
	f.LastID = id
	return f.LikeErr
}

func (f *fakeClient) Unlike(_ context.Context, id string) error {
	f.record("Unlike")
	f.LastID = id
	return f.LikeErr
}

func (f *fakeClient) GetLikes(context.Context) ([]string, error) {
	f.record("GetLikes")
	return f.LikesRet, f.LikesErr
}
