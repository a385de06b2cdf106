package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Cookie names. Keep these stable; the dashboard reads them by name.
const (
	AccessCookieName  = "accessToken"
	RefreshCookieName = "refreshToken"
)

// CookieWriter encodes the session token pair into HTTP cookies.
//
// Transport policy: HttpOnly always, SameSite=Strict, Path=/, Max-Age equal
// to the token TTL, Secure only when running in production.
type CookieWriter struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// SetSession attaches both session cookies to the outgoing response.
func (w CookieWriter) SetSession(c *gin.Context, pair TokenPair) {
	http.SetCookie(c.Writer, w.sessionCookie(AccessCookieName, pair.AccessToken, w.AccessTTL))
	http.SetCookie(c.Writer, w.sessionCookie(RefreshCookieName, pair.RefreshToken, w.RefreshTTL))
}

// ClearSession expires both session cookies immediately (Max-Age=0 on the
// wire). It does not and cannot revoke an already-issued access token.
func (w CookieWriter) ClearSession(c *gin.Context) {
	http.SetCookie(c.Writer, w.expiredCookie(AccessCookieName))
	http.SetCookie(c.Writer, w.expiredCookie(RefreshCookieName))
}

func (w CookieWriter) sessionCookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   int(ttl.Seconds()),
		Path:     "/",
		Secure:   w.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

func (w CookieWriter) expiredCookie(name string) *http.Cookie {
	// MaxAge < 0 serializes as Max-Age=0, deleting the cookie.
	return &http.Cookie{
		Name:     name,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		Secure:   w.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// TokensFromRequest extracts the session tokens from the Cookie header.
// Absent cookies yield empty strings, never an error. net/http parsing is
// lenient with malformed pairs and returns the first definition when a name
// repeats; we rely on that behavior rather than re-parsing the header.
func TokensFromRequest(r *http.Request) (access, refresh string) {
	if ck, err := r.Cookie(AccessCookieName); err == nil {
		access = ck.Value
	}
	if ck, err := r.Cookie(RefreshCookieName); err == nil {
		refresh = ck.Value
	}
	return access, refresh
}
