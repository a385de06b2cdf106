package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"fabrika-platform/internal/audit"
	"fabrika-platform/internal/auth"
	"fabrika-platform/internal/customers"
	"fabrika-platform/internal/httperr"
	"fabrika-platform/internal/suppliers"
	"fabrika-platform/internal/users"
	"fabrika-platform/internal/validate"
	"fabrika-platform/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Limiter throttles login attempts. Nil disables throttling (tests, local
// runs without redis).
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.
type Handlers struct {
	Cookies   auth.CookieWriter
	Users     *users.Service
	Customers *customers.Service
	Suppliers *suppliers.Service
	Audit     *audit.Service
	Validate  *validator.Validate
	Limiter   Limiter
}

/* ===================== REQUEST SCHEMAS ===================== */

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type customerRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=1,max=20"`
}

type supplierRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=1,max=20"`
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,role"`
}

// Binding middlewares; the request types stay unexported so routes obtain
// them through these accessors.

func (h Handlers) BindLogin() gin.HandlerFunc      { return validate.Bind[loginRequest](h.Validate) }
func (h Handlers) BindCustomer() gin.HandlerFunc   { return validate.Bind[customerRequest](h.Validate) }
func (h Handlers) BindSupplier() gin.HandlerFunc   { return validate.Bind[supplierRequest](h.Validate) }
func (h Handlers) BindCreateUser() gin.HandlerFunc { return validate.Bind[createUserRequest](h.Validate) }

/* ===================== SESSION ===================== */

// Login verifies credentials and opens a cookie session.
// 404 when the email is unknown, 401 on a password mismatch, 400 when the
// body fails validation (handled by BindLogin before this runs).
func (h Handlers) Login(c *gin.Context) {
	req := validate.Bound[loginRequest](c)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if h.Limiter != nil {
		ok, err := h.Limiter.Allow(c.Request.Context(), "login:"+c.ClientIP()+":"+email)
		if err != nil {
			// Fail open: a redis outage must not lock everyone out.
			logger.FromGin(c).Warn("login limiter unavailable", "err", err)
		} else if !ok {
			httperr.Abort(c, httperr.RateLimited("too many login attempts, try again later"))
			return
		}
	}

	id, pair, err := h.Users.Login(c.Request.Context(), email, req.Password)
	switch {
	case errors.Is(err, users.ErrNotFound):
		httperr.Abort(c, httperr.NotFound("user not found"))
		return
	case errors.Is(err, users.ErrBadCredentials):
		httperr.Abort(c, httperr.BadCredentials("incorrect password"))
		return
	case err != nil:
		_ = c.Error(err)
		return
	}

	h.Cookies.SetSession(c, pair)
	h.auditSession(c, id, audit.ActionLogin)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "signed in", "user": id})
}

// Logout clears the session cookies and revokes the stored refresh token
// when one is presented. It always succeeds: an already-dead session has
// nothing left to clear. The current access token stays valid until its own
// expiry; only the renewal path is cut here.
func (h Handlers) Logout(c *gin.Context) {
	if _, refresh := auth.TokensFromRequest(c.Request); refresh != "" {
		id, err := h.Users.RevokeRefreshToken(c.Request.Context(), refresh)
		if err != nil {
			logger.FromGin(c).Debug("refresh revocation skipped", "err", err)
		} else {
			h.auditSession(c, id, audit.ActionLogout)
		}
	}
	h.Cookies.ClearSession(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "signed out"})
}

// Refresh explicitly renews the cookie pair from the refresh cookie. The
// session middleware performs the same renewal transparently; this endpoint
// lets the dashboard renew ahead of time.
func (h Handlers) Refresh(c *gin.Context) {
	_, refresh := auth.TokensFromRequest(c.Request)
	if refresh == "" {
		httperr.Abort(c, httperr.AuthMissing("refresh token required"))
		return
	}

	id, pair, err := h.Users.Refresh(c.Request.Context(), refresh)
	if err != nil {
		httperr.Abort(c, httperr.AuthExpired("session expired, sign in again"))
		return
	}

	h.Cookies.SetSession(c, pair)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": id})
}

// Me returns the caller identity attached by the session middleware.
func (h Handlers) Me(c *gin.Context) {
	id, ok := callerIdentity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": id})
}

/* ===================== HELPERS ===================== */

// callerIdentity fetches the identity the session middleware attached. The
// false branch is defense against route wiring mistakes, not a normal path.
func callerIdentity(c *gin.Context) (auth.Identity, bool) {
	id, err := auth.IdentityFrom(c.Request.Context())
	if err != nil {
		httperr.Abort(c, httperr.AuthMissing("authentication required"))
		return auth.Identity{}, false
	}
	return id, true
}

func (h Handlers) auditSession(c *gin.Context, id auth.Identity, action string) {
	if h.Audit == nil {
		return
	}
	e := audit.Event{
		CompanyID:   id.CompanyID,
		ActorUserID: id.UserID,
		ActorRole:   id.Role,
		Entity:      "session",
		Action:      action,
		Method:      c.Request.Method,
		Path:        c.FullPath(),
		Status:      http.StatusOK,
		IPAddress:   c.ClientIP(),
	}
	if err := h.Audit.Append(c.Request.Context(), e); err != nil {
		logger.FromGin(c).Warn("audit append failed", "err", err)
	}
}
