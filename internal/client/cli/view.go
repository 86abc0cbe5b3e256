package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/WayleX/Beerter/internal/client/client"
	"github.com/WayleX/Beerter/internal/client/game"
	"github.com/WayleX/Beerter/internal/client/models"
	"github.com/WayleX/Beerter/internal/client/services"
	"github.com/WayleX/Beerter/internal/common"
)

func stars(rating int) string {
	rating = max(0, min(rating, models.MaxRating))
	return strings.Repeat("★", rating) + strings.Repeat("☆", models.MaxRating-rating)
}

func formatReview(r models.Review) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s %s", r.ID, stars(r.Rating), r.Headline)
	if r.ProductID != "" {
		fmt.Fprintf(&b, " (%s)", r.ProductID)
	}
	if r.UserNickname != "" {
		fmt.Fprintf(&b, " by %s", r.UserNickname)
	}
	if r.Liked {
		b.WriteString(" ♥")
	}
	return b.String()
}

func formatReviewDetail(r models.Review) string {
	var b strings.Builder
	b.WriteString(formatReview(r))
	if r.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(r.Body)
	}
	if t, ok := r.Created(); ok {
		fmt.Fprintf(&b, "\n\ncreated %s", t.Format(time.DateTime))
	}
	if t, ok := r.Updated(); ok && r.UpdatedAt != r.CreatedAt {
		fmt.Fprintf(&b, ", updated %s", t.Format(time.DateTime))
	}
	return b.String()
}

func formatBeer(b models.Beer) string {
	parts := []string{b.Name}
	if b.Type != "" {
		parts = append(parts, b.Type)
	}
	if b.Origin != "" {
		parts = append(parts, b.Origin)
	}
	if b.ABV != "" {
		parts = append(parts, b.ABV+"%")
	}
	return strings.Join(parts, " | ")
}

func mark(ok bool) string {
	if ok {
		return "✔"
	}
	return "✘"
}

func formatHint(h game.Hint) string {
	return fmt.Sprintf("Style %s | Country %s | Emoji %s", mark(h.Style), mark(h.Country), mark(h.Emoji))
}

// describe turns an error into something worth showing the user.
func describe(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, client.ErrUnauthorized), errors.Is(err, common.ErrNoToken):
		return "please sign in"
	case errors.Is(err, common.ErrInvalidToken):
		return "session expired, please sign in"
	case errors.Is(err, common.ErrNothingToUpdate):
		return "nothing changed"
	case errors.Is(err, services.ErrInvalidInput):
		return strings.TrimPrefix(err.Error(), services.ErrInvalidInput.Error()+": ")
	case errors.As(err, &apiErr):
		return apiErr.Message
	default:
		return err.Error()
	}
}
