package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/WayleX/Beerter/internal/client/client"
	"github.com/WayleX/Beerter/internal/client/models"
)

type BeerService interface {
	// List returns the full catalogue sorted by name.
	List(ctx context.Context) ([]models.Beer, error)
	// Names returns the beer names the server offers for reviews.
	Names(ctx context.Context) ([]string, error)
}

type beerService struct {
	client client.Client
}

func NewBeerService(c client.Client) BeerService {
	return &beerService{client: c}
}

func (b *beerService) List(ctx context.Context) ([]models.Beer, error) {
	beers, err := b.client.GetAllBeers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list beers: %w", err)
	}
	sort.SliceStable(beers, func(i, j int) bool { return beers[i].Name < beers[j].Name })
	return beers, nil
}

func (b *beerService) Names(ctx context.Context) ([]string, error) {
	names, err := b.client.GetBeerNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("beer names: %w", err)
	}
	return names, nil
}
