package auth

import "github.com/golang-jwt/jwt/v5"

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims are the only supported JWT claims shape for this service.
// The registered Subject carries the user id. Refresh tokens carry ONLY the
// subject; identity details live in the access token to limit replay value.
type Claims struct {
	jwt.RegisteredClaims

	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Role      string    `json:"role,omitempty"`
	CompanyID string    `json:"company_id,omitempty"`
	TokenType TokenType `json:"token_type"`
}

// Identity is the request-scoped view of the authenticated caller. It is
// rebuilt from token claims on every request and never persisted.
type Identity struct {
	UserID    string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CompanyID string `json:"company_id"`
}

// Identity projects access-token claims into the caller identity.
func (c Claims) Identity() Identity {
	return Identity{
		UserID:    c.Subject,
		Email:     c.Email,
		Name:      c.Name,
		Role:      c.Role,
		CompanyID: c.CompanyID,
	}
}
