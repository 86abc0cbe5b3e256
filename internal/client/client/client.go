package client

import (
	"context"

	"github.com/WayleX/Beerter/internal/client/models"
)

// TokenSource yields the current bearer token. session.Store satisfies it.
type TokenSource interface {
	Get() (string, bool)
}

// Client is the Beerter API surface used by the services.
type Client interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, req models.LoginRequest) (string, error)
	Verify(ctx context.Context, token string) VerifyResult
	Logout(ctx context.Context) error

	GetAllBeers(ctx context.Context) ([]models.Beer, error)
	GetBeerNames(ctx context.Context) ([]string, error)

	PostReview(ctx context.Context, r models.NewReview) (*models.Review, error)
	GetReview(ctx context.Context, id string) (*models.Review, error)
	EditReview(ctx context.Context, id string, u models.ReviewUpdate) (*models.Review, error)
	GetReviewsByUser(ctx context.Context) ([]models.Review, error)
	GetRecentReviews(ctx context.Context) ([]models.Review, error)
	GetReviewsByProduct(ctx context.Context, productID string) ([]models.Review, error)
	SearchReviews(ctx context.Context, keyword string) ([]models.Review, error)

	GetFeed(ctx context.Context) (*models.Feed, error)
	RefreshFeed(ctx context.Context) error

	Like(ctx context.Context, reviewID string) error
	Unlike(ctx context.Context, reviewID string) error
	GetLikes(ctx context.Context) ([]string, error)
}
