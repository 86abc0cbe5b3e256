package cli

import (
	"context"
	"strings"

	"github.com/WayleX/Beerter/internal/client/client"
	"github.com/WayleX/Beerter/internal/client/models"
)

func (a *App) printReviews(rs []models.Review, empty string) {
	if len(rs) == 0 {
		a.println(empty)
		return
	}
	for _, r := range rs {
		a.println(formatReview(r))
	}
}

// Feed shows the personal feed.
func (a *App) Feed(ctx context.Context) error {
	return a.protected(ctx, func(ctx context.Context) error {
		feed, err := a.reviewService.Feed(ctx)
		if err != nil {
			return err
		}
		a.printReviews(feed.Reviews, "Your feed is empty")
		return nil
	})
}

// Refresh asks the server to rebuild the feed, then shows it.
func (a *App) Refresh(ctx context.Context) error {
	return a.protected(ctx, func(ctx context.Context) error {
		if err := a.reviewService.RefreshFeed(ctx); err != nil {
			return err
		}
		feed, err := a.reviewService.Feed(ctx)
		if err != nil {
			return err
		}
		a.printReviews(feed.Reviews, "Your feed is empty")
		return nil
	})
}

// Mine lists the signed-in user's reviews.
func (a *App) Mine(ctx context.Context) error {
	return a.protected(ctx, func(ctx context.Context) error {
		rs, err := a.reviewService.Mine(ctx)
		if err != nil {
			return err
		}
		a.printReviews(rs, "You have not reviewed anything yet")
		return nil
	})
}

func (a *App) Recent(ctx context.Context) error {
	return a.protected(ctx, func(ctx context.Context) error {
		rs, err := a.reviewService.Recent(ctx)
		if err != nil {
			return err
		}
		a.printReviews(rs, "No reviews yet")
		return nil
	})
}

// Show prints a single review in full.
func (a *App) Show(ctx context.Context, id string) error {
	return a.protected(ctx, func(ctx context.Context) error {
		r, err := a.reviewService.Get(ctx, id)
		if err != nil {
			return err
		}
		a.println(formatReviewDetail(*r))
		return nil
	})
}

// Post prompts for a new review. The beer names the server knows are shown
// as a reminder when available.
func (a *App) Post(ctx context.Context) error {
	return a.protected(ctx, func(ctx context.Context) error {
		if names, err := a.beerService.Names(ctx); err == nil && len(names) > 0 {
			a.printf("Beers: %s\n", strings.Join(names, ", "))
		}

		product, err := getSimpleText(a.reader, "Beer (product id)", a.out)
		if err != nil {
			return err
		}
		headline, err := getSimpleText(a.reader, "Headline", a.out)
		if err != nil {
			return err
		}
		body, err := getMultiline(a.reader, "Review", a.out)
		if err != nil {
			return err
		}
		rating, _, err := getNumber(a.reader, "Rating (1-5)", a.out)
		if err != nil {
			return err
		}

		r, err := a.reviewService.Post(ctx, models.NewReview{
			Headline:  headline,
			Body:      body,
			Rating:    rating,
			ProductID: product,
		})
		if err != nil {
			return err
		}
		a.printf("Review %s posted\n", r.ID)
		return nil
	})
}

// Edit prompts for new values; an empty answer keeps the current one.
func (a *App) Edit(ctx context.Context, id string) error {
	return a.protected(ctx, func(ctx context.Context) error {
		cur, err := a.reviewService.Get(ctx, id)
		if err != nil {
			return err
		}
		a.println(formatReviewDetail(*cur))

		var u models.ReviewUpdate

		headline, err := getSimpleText(a.reader, "New headline (empty keeps current)", a.out)
		if err != nil {
			return err
		}
		if headline != "" && headline != cur.Headline {
			u.Headline = &headline
		}

		body, err := getMultiline(a.reader, "New review (empty keeps current)", a.out)
		if err != nil {
			return err
		}
		if body != "" && body != cur.Body {
			u.Body = &body
		}

		rating, ok, err := getNumber(a.reader, "New rating 1-5 (empty keeps current)", a.out)
		if err != nil {
			return err
		}
		if ok && rating != cur.Rating {
			u.Rating = &rating
		}

		r, err := a.reviewService.Edit(ctx, cur.ID, u)
		if err != nil {
			return err
		}
		a.printf("Review %s updated\n", r.ID)
		return nil
	})
}

func (a *App) Search(ctx context.Context, keyword string) error {
	return a.protected(ctx, func(ctx context.Context) error {
		rs, err := a.reviewService.Search(ctx, keyword)
		if err != nil {
			return err
		}
		a.printReviews(rs, "Nothing matches "+keyword)
		return nil
	})
}

// Product lists the reviews of one beer.
func (a *App) Product(ctx context.Context, productID string) error {
	return a.protected(ctx, func(ctx context.Context) error {
		rs, err := a.reviewService.ByProduct(ctx, productID)
		if err != nil {
			return err
		}
		a.printReviews(rs, "No reviews for "+productID)
		return nil
	})
}

func (a *App) Like(ctx context.Context, id string) error {
	return a.protected(ctx, func(ctx context.Context) error {
		if err := a.reviewService.Like(ctx, id); err != nil {
			return err
		}
		a.println("♥ Liked")
		return nil
	})
}

func (a *App) Unlike(ctx context.Context, id string) error {
	return a.protected(ctx, func(ctx context.Context) error {
		if err := a.reviewService.Unlike(ctx, id); err != nil {
			return err
		}
		a.println("Like removed")
		return nil
	})
}

// Likes lists the ids of reviews the user liked.
func (a *App) Likes(ctx context.Context) error {
	return a.protected(ctx, func(ctx context.Context) error {
		ids, err := a.reviewService.Likes(ctx)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			a.println("You have not liked anything yet")
			return nil
		}
		for _, id := range ids {
			a.println("♥", id)
		}
		return nil
	})
}

// Dashboard shows the user's reviews next to the catalogue. A failing
// section is reported in place.
func (a *App) Dashboard(ctx context.Context) error {
	return a.protected(ctx, func(ctx context.Context) error {
		d := a.dashboard.Load(ctx)

		a.println("== My reviews ==")
		if d.ReviewsErr != nil {
			if client.IsAuthError(d.ReviewsErr) {
				return d.ReviewsErr
			}
			a.println("Could not load reviews:", describe(d.ReviewsErr))
		} else {
			a.printReviews(d.Reviews, "You have not reviewed anything yet")
		}

		a.println("== Beers ==")
		if d.BeersErr != nil {
			a.println("Could not load beers:", describe(d.BeersErr))
		} else {
			for _, b := range d.Beers {
				a.println(formatBeer(b))
			}
		}
		return nil
	})
}
