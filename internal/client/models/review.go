package models

import (
	"strings"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a beer review as served by the API. Liked is relative to the
// user whose token fetched it.
type Review struct {
	ID           string `json:"id"`
	Headline     string `json:"headline"`
	Body         string `json:"review"`
	Rating       int    `json:"rating"`
	ProductID    string `json:"product_id"`
	UserNickname string `json:"user_nickname,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
	Liked        bool   `json:"liked"`
}

// timestamp layouts seen from the API: with and without zone, with and
// without fractional seconds.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Created parses CreatedAt. Timestamps without a zone are taken as UTC.
func (r Review) Created() (time.Time, bool) {
	return parseTimestamp(r.CreatedAt)
}

// Updated parses UpdatedAt.
func (r Review) Updated() (time.Time, bool) {
	return parseTimestamp(r.UpdatedAt)
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// NewReview is the body of POST /post_review.
type NewReview struct {
	Headline  string `json:"headline" validate:"required"`
	Body      string `json:"review" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	ProductID string `json:"product_id" validate:"required"`
}

// ReviewUpdate is the body of PUT /edit_review/{id}. Nil fields are left
// unchanged on the server.
type ReviewUpdate struct {
	Headline *string `json:"headline,omitempty" validate:"omitempty,min=1"`
	Body     *string `json:"review,omitempty" validate:"omitempty,min=1"`
	Rating   *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// Empty reports whether the update changes nothing.
func (u ReviewUpdate) Empty() bool {
	return u.Headline == nil && u.Body == nil && u.Rating == nil
}

// Feed is the body of GET /get_feed.
type Feed struct {
	Source  string   `json:"source,omitempty"`
	Reviews []Review `json:"reviews"`
}

// SearchQuery is validated before hitting /get_reviews_by_keyword.
type SearchQuery struct {
	Keyword string `validate:"required"`
}
