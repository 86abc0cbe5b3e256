package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what an access token says about itself. It is read without
// checking the signature and must never be used to decide validity.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token's own exp claim is in the past.
// A token without exp never expires locally.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// ParseTokenInfo decodes the claims of a JWT access token.
func ParseTokenInfo(token string) (TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("parse token: %w", err)
	}

	var info TokenInfo
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		info.Subject = sub
	} else if email, ok := claims["email"].(string); ok {
		info.Subject = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
