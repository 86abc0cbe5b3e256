package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/WayleX/Beerter/internal/client/client"
	"github.com/WayleX/Beerter/internal/client/models"
	"github.com/WayleX/Beerter/internal/common"
)

// ReviewService covers reviews, the feed and likes.
type ReviewService interface {
	Feed(ctx context.Context) (*models.Feed, error)
	RefreshFeed(ctx context.Context) error
	Mine(ctx context.Context) ([]models.Review, error)
	Recent(ctx context.Context) ([]models.Review, error)
	Get(ctx context.Context, id string) (*models.Review, error)
	Post(ctx context.Context, r models.NewReview) (*models.Review, error)
	Edit(ctx context.Context, id string, u models.ReviewUpdate) (*models.Review, error)
	Search(ctx context.Context, keyword string) ([]models.Review, error)
	ByProduct(ctx context.Context, productID string) ([]models.Review, error)
	Like(ctx context.Context, id string) error
	Unlike(ctx context.Context, id string) error
	Likes(ctx context.Context) ([]string, error)
}

type reviewService struct {
	client client.Client
}

func NewReviewService(c client.Client) ReviewService {
	return &reviewService{client: c}
}

// idInput is validated before an id goes into a request path.
type idInput struct {
	ID string `json:"id" validate:"required"`
}

func checkID(id string) (string, error) {
	in := idInput{ID: strings.TrimSpace(id)}
	if err := validateStruct(in); err != nil {
		return "", err
	}
	return in.ID, nil
}

func (s *reviewService) Feed(ctx context.Context) (*models.Feed, error) {
	feed, err := s.client.GetFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("feed: %w", err)
	}
	return feed, nil
}

func (s *reviewService) RefreshFeed(ctx context.Context) error {
	if err := s.client.RefreshFeed(ctx); err != nil {
		return fmt.Errorf("refresh feed: %w", err)
	}
	return nil
}

func (s *reviewService) Mine(ctx context.Context) ([]models.Review, error) {
	rs, err := s.client.GetReviewsByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("my reviews: %w", err)
	}
	return rs, nil
}

func (s *reviewService) Recent(ctx context.Context) ([]models.Review, error) {
	rs, err := s.client.GetRecentReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent reviews: %w", err)
	}
	return rs, nil
}

func (s *reviewService) Get(ctx context.Context, id string) (*models.Review, error) {
	id, err := checkID(id)
	if err != nil {
		return nil, err
	}
	r, err := s.client.GetReview(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review %s: %w", id, err)
	}
	return r, nil
}

func (s *reviewService) Post(ctx context.Context, r models.NewReview) (*models.Review, error) {
	r.Headline = strings.TrimSpace(r.Headline)
	r.Body = strings.TrimSpace(r.Body)
	r.ProductID = strings.TrimSpace(r.ProductID)
	if err := validateStruct(r); err != nil {
		return nil, err
	}
	out, err := s.client.PostReview(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("post review: %w", err)
	}
	return out, nil
}

// Edit changes only the fields set in u. An update that sets nothing fails
// with common.ErrNothingToUpdate before any request is made.
func (s *reviewService) Edit(ctx context.Context, id string, u models.ReviewUpdate) (*models.Review, error) {
	id, err := checkID(id)
	if err != nil {
		return nil, err
	}
	if u.Empty() {
		return nil, common.ErrNothingToUpdate
	}
	if err := validateStruct(u); err != nil {
		return nil, err
	}
	out, err := s.client.EditReview(ctx, id, u)
	if err != nil {
		return nil, fmt.Errorf("edit review %s: %w", id, err)
	}
	return out, nil
}

func (s *reviewService) Search(ctx context.Context, keyword string) ([]models.Review, error) {
	q := models.SearchQuery{Keyword: strings.TrimSpace(keyword)}
	if err := validateStruct(q); err != nil {
		return nil, err
	}
	rs, err := s.client.SearchReviews(ctx, q.Keyword)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", q.Keyword, err)
	}
	return rs, nil
}

func (s *reviewService) ByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	id, err := checkID(productID)
	if err != nil {
		return nil, err
	}
	rs, err := s.client.GetReviewsByProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reviews for %s: %w", id, err)
	}
	return rs, nil
}

// Like is idempotent: liking an already liked review succeeds.
func (s *reviewService) Like(ctx context.Context, id string) error {
	id, err := checkID(id)
	if err != nil {
		return err
	}
	if err := s.client.Like(ctx, id); err != nil {
		return fmt.Errorf("like %s: %w", id, err)
	}
	return nil
}

func (s *reviewService) Unlike(ctx context.Context, id string) error {
	id, err := checkID(id)
	if err != nil {
		return err
	}
	if err := s.client.Unlike(ctx, id); err != nil {
		return fmt.Errorf("unlike %s: %w", id, err)
	}
	return nil
}

func (s *reviewService) Likes(ctx context.Context) ([]string, error) {
	ids, err := s.client.GetLikes(ctx)
	if err != nil {
		return nil, fmt.Errorf("likes: %w", err)
	}
	return ids, nil
}
