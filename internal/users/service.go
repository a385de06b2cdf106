package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"fabrika-platform/internal/auth"
	"fabrika-platform/internal/rbac"

	"github.com/google/uuid"
)

var (
	// ErrBadCredentials means the account exists but the password is wrong.
	ErrBadCredentials = errors.New("bad credentials")
	// ErrRefreshMismatch means the presented refresh token is not the one
	// last issued for the subject (revoked, rotated, or replayed).
	ErrRefreshMismatch = errors.New("refresh token mismatch")
	// ErrNotAllowed means the acting role may not administer the target role.
	ErrNotAllowed = errors.New("role not allowed to administer target")
)

// Service owns account credentials and the session lifecycle.
type Service struct {
	repo   Repository
	tokens *auth.Manager
	// clock is injectable for deterministic tests.
	clock func() time.Time
}

func NewService(repo Repository, tokens *auth.Manager) *Service {
	return &Service{repo: repo, tokens: tokens, clock: time.Now}
}

/* ===================== SESSIONS ===================== */

// Login verifies credentials and opens a session: a fresh token pair is
// issued and the refresh half is persisted on the account for later
// comparison. ErrNotFound and ErrBadCredentials stay distinct so the API can
// answer 404 and 401 respectively.
func (s *Service) Login(ctx context.Context, email, password string) (auth.Identity, auth.TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return auth.Identity{}, auth.TokenPair{}, ErrInvalidArgument
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return auth.Identity{}, auth.TokenPair{}, err
	}
	if !auth.VerifyPassword(password, u.PasswordHash) {
		return auth.Identity{}, auth.TokenPair{}, ErrBadCredentials
	}

	now := s.clock().UTC()
	id := u.Identity()
	pair, err := s.tokens.IssuePair(now, id)
	if err != nil {
		return auth.Identity{}, auth.TokenPair{}, err
	}
	if err := s.repo.SetRefreshToken(ctx, u.ID, pair.RefreshToken); err != nil {
		return auth.Identity{}, auth.TokenPair{}, err
	}
	if err := s.repo.SetLastLogin(ctx, u.ID, now); err != nil {
		return auth.Identity{}, auth.TokenPair{}, err
	}
	return id, pair, nil
}

// Refresh implements auth.Refresher. The presented token must verify AND
// match the stored value exactly; anything else fails renewal. Concurrent
// renewals for one subject race last-write-wins on the stored token, which
// is accepted behavior.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.Identity, auth.TokenPair, error) {
	now := s.clock().UTC()
	claims, err := s.tokens.Verify(refreshToken, auth.TokenTypeRefresh, now)
	if err != nil {
		return auth.Identity{}, auth.TokenPair{}, err
	}

	u, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		return auth.Identity{}, auth.TokenPair{}, err
	}
	if u.RefreshToken == "" || u.RefreshToken != refreshToken {
		return auth.Identity{}, auth.TokenPair{}, ErrRefreshMismatch
	}

	id := u.Identity()
	pair, err := s.tokens.IssuePair(now, id)
	if err != nil {
		return auth.Identity{}, auth.TokenPair{}, err
	}
	if err := s.repo.SetRefreshToken(ctx, u.ID, pair.RefreshToken); err != nil {
		return auth.Identity{}, auth.TokenPair{}, err
	}
	return id, pair, nil
}

// Logout revokes the stored refresh token so renewal fails from now on. The
// current access token stays valid until its own expiry; with a 15 minute
// TTL that residual window is accepted and documented.
func (s *Service) Logout(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrInvalidArgument
	}
	err := s.repo.SetRefreshToken(ctx, userID, "")
	if errors.Is(err, ErrNotFound) {
		// Account deleted mid-session; nothing left to revoke.
		return nil
	}
	return err
}

// RevokeRefreshToken revokes by token rather than by subject, for the
// logout path where no verified identity is available. The resolved identity
// is returned so the caller can attribute the sign-out.
func (s *Service) RevokeRefreshToken(ctx context.Context, refreshToken string) (auth.Identity, error) {
	claims, err := s.tokens.Verify(refreshToken, auth.TokenTypeRefresh, s.clock().UTC())
	if err != nil {
		return auth.Identity{}, err
	}
	u, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		return auth.Identity{}, err
	}
	if err := s.Logout(ctx, u.ID); err != nil {
		return auth.Identity{}, err
	}
	return u.Identity(), nil
}

/* ===================== ADMINISTRATION ===================== */

type NewUser struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Create registers an account inside the actor's company. The rbac matrix
// decides which roles the actor may hand out.
func (s *Service) Create(ctx context.Context, actor auth.Identity, nu NewUser) (User, error) {
	nu.Email = normalizeEmail(nu.Email)
	if nu.Name == "" || nu.Email == "" || nu.Password == "" {
		return User{}, ErrInvalidArgument
	}
	if !rbac.Valid(nu.Role) {
		return User{}, ErrInvalidArgument
	}
	if !rbac.CanAdminister(actor.Role, nu.Role) {
		return User{}, ErrNotAllowed
	}

	hash, err := auth.HashPassword(nu.Password)
	if err != nil {
		return User{}, err
	}

	now := s.clock().UTC()
	u := User{
		ID:           uuid.NewString(),
		CompanyID:    actor.CompanyID,
		Name:         nu.Name,
		Email:        nu.Email,
		PasswordHash: hash,
		Role:         nu.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// List returns the accounts of the actor's company.
func (s *Service) List(ctx context.Context, actor auth.Identity) ([]User, error) {
	return s.repo.List(ctx, actor.CompanyID)
}

// Delete removes an account from the actor's company, matrix permitting.
func (s *Service) Delete(ctx context.Context, actor auth.Identity, id string) error {
	if id == "" {
		return ErrInvalidArgument
	}
	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if target.CompanyID != actor.CompanyID {
		// Cross-tenant ids are indistinguishable from unknown ids.
		return ErrNotFound
	}
	if !rbac.CanAdminister(actor.Role, target.Role) {
		return ErrNotAllowed
	}
	return s.repo.Delete(ctx, actor.CompanyID, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
