package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/WayleX/Beerter/internal/client/models"
)

// Dashboard is the signed-in landing view. Each section carries its own
// error; one failing section does not hide the other.
type Dashboard struct {
	Reviews    []models.Review
	ReviewsErr error

	Beers    []models.Beer
	BeersErr error
}

type DashboardService struct {
	reviews ReviewService
	beers   BeerService
}

func NewDashboardService(reviews ReviewService, beers BeerService) *DashboardService {
	return &DashboardService{reviews: reviews, beers: beers}
}

// Load fetches the user's reviews and the beer list concurrently.
func (d *DashboardService) Load(ctx context.Context) *Dashboard {
	var (
		out Dashboard
		g   errgroup.Group
	)

	// Sections report through out; returning nil keeps the group from
	// short-circuiting.
	g.Go(func() error {
		out.Reviews, out.ReviewsErr = d.reviews.Mine(ctx)
		return nil
	})
	g.Go(func() error {
		out.Beers, out.BeersErr = d.beers.List(ctx)
		return nil
	})
	_ = g.Wait()

	return &out
}
