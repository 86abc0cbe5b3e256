package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/WayleX/Beerter/internal/client/game"
)

// Beers lists the beer catalogue.
func (a *App) Beers(ctx context.Context) error {
	return a.protected(ctx, func(ctx context.Context) error {
		beers, err := a.beerService.List(ctx)
		if err != nil {
			return err
		}
		if len(beers) == 0 {
			a.println("No beers found")
			return nil
		}
		for _, b := range beers {
			a.println(formatBeer(b))
		}
		return nil
	})
}

// Game plays the beer guessing game until the beer is guessed or the user
// enters an empty line. "new" starts over with another beer.
func (a *App) Game(ctx context.Context) error {
	return a.protected(ctx, func(ctx context.Context) error {
		g, err := game.New(nil, nil)
		if err != nil {
			return err
		}

		a.println("🍺 Beer Guess Game")
		a.printf("Beers: %s\n", strings.Join(g.Beers(), ", "))

		for {
			name, err := getSimpleText(a.reader, "Guess the beer (empty line to leave, 'new' to restart)", a.out)
			if err != nil || name == "" {
				return nil
			}
			if name == "new" {
				g.Reset()
				a.println("New beer picked")
				continue
			}

			hint, err := g.Guess(name)
			if errors.Is(err, game.ErrUnknownBeer) {
				a.println("❗ Please select a beer from the list")
				continue
			}
			if err != nil {
				return err
			}

			a.println(formatHint(hint))
			if hint.Correct {
				a.printf("🎉 Correct! The beer is %s (attempts: %d)\n", g.Answer().Name, g.Attempts())
				return nil
			}
		}
	})
}
