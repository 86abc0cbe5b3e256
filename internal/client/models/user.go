package models

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Nickname string `json:"nickname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Identity is what /verify tells us about the token owner.
type Identity struct {
	Email    string
	UserID   string
	Nickname string
}

// DisplayName prefers the nickname and falls back to the email.
func (i Identity) DisplayName() string {
	if i.Nickname != "" {
		return i.Nickname
	}
	return i.Email
}
