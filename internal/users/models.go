package users

import (
	"time"

	"fabrika-platform/internal/auth"
)

// User is the persisted account record.
//
// Invariants:
// - email is stored lowercased and is globally unique; login resolves the
//   account by email alone, before any tenant context exists
// - password_hash is a bcrypt digest; the plaintext never leaves the login path
// - refresh_token holds the last issued refresh token; renewal succeeds only
//   when the presented token matches it exactly
type User struct {
	ID           string    `bson:"_id" json:"id"`
	CompanyID    string    `bson:"company_id" json:"company_id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	RefreshToken string    `bson:"refresh_token,omitempty" json:"-"`
	LastLogin    time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// Identity projects the account into the claims embedded in issued tokens.
func (u User) Identity() auth.Identity {
	return auth.Identity{
		UserID:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CompanyID: u.CompanyID,
	}
}
