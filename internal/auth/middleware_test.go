package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type stubRefresher struct {
	id    Identity
	pair  TokenPair
	err   error
	calls int
	got   string
}

func (s *stubRefresher) Refresh(ctx context.Context, refreshToken string) (Identity, TokenPair, error) {
	s.calls++
	s.got = refreshToken
	return s.id, s.pair, s.err
}

func sessionRouter(m *Manager, sessions Refresher) (*gin.Engine, *Identity) {
	gin.SetMode(gin.TestMode)

	var seen Identity
	cw := CookieWriter{AccessTTL: 15 * time.Minute, RefreshTTL: 7 * 24 * time.Hour}

	r := gin.New()
	r.GET("/x", RequireSession(m, sessions, cw), func(c *gin.Context) {
		id, err := IdentityFrom(c.Request.Context())
		if err != nil {
			c.Status(500)
			return
		}
		seen = id
		c.Status(200)
	})
	return r, &seen
}

func TestRequireSession_NoCookieIs401(t *testing.T) {
	m := testManager(t)
	r, _ := sessionRouter(m, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	r.ServeHTTP(w, req)
	if w.Code != 401 {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireSession_ValidAccessToken(t *testing.T) {
	m := testManager(t)
	r, seen := sessionRouter(m, nil)

	pair, err := m.IssuePair(time.Now(), testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: AccessCookieName, Value: pair.AccessToken})
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if *seen != testIdentity() {
		t.Fatalf("handler saw wrong identity: %+v", *seen)
	}
}

func TestRequireSession_ExpiredAccessRenewsFromRefresh(t *testing.T) {
	m := testManager(t)

	// Issued an hour ago with a 15 minute access TTL: expired, refresh alive.
	issuedAt := time.Now().Add(-time.Hour)
	old, err := m.IssuePair(issuedAt, testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	fresh, err := m.IssuePair(time.Now(), testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	sessions := &stubRefresher{id: testIdentity(), pair: fresh}
	r, seen := sessionRouter(m, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: AccessCookieName, Value: old.AccessToken})
	req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: old.RefreshToken})
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected transparent renewal, got %d: %s", w.Code, w.Body.String())
	}
	if sessions.calls != 1 || sessions.got != old.RefreshToken {
		t.Fatalf("refresher not called with the presented token: %+v", sessions)
	}
	if *seen != testIdentity() {
		t.Fatalf("handler saw wrong identity after renewal: %+v", *seen)
	}

	// The renewed pair must travel back as cookies on this same response.
	var gotAccess, gotRefresh string
	for _, ck := range w.Result().Cookies() {
		switch ck.Name {
		case AccessCookieName:
			gotAccess = ck.Value
		case RefreshCookieName:
			gotRefresh = ck.Value
		}
	}
	if gotAccess != fresh.AccessToken || gotRefresh != fresh.RefreshToken {
		t.Fatalf("renewed cookies not attached to the response")
	}
}

func TestRequireSession_RenewalFailureIs401(t *testing.T) {
	m := testManager(t)

	old, err := m.IssuePair(time.Now().Add(-time.Hour), testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	sessions := &stubRefresher{err: errors.New("refresh token mismatch")}
	r, _ := sessionRouter(m, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: AccessCookieName, Value: old.AccessToken})
	req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: old.RefreshToken})
	r.ServeHTTP(w, req)

	if w.Code != 401 {
		t.Fatalf("expected 401 after failed renewal, got %d", w.Code)
	}
}

func TestRequireSession_ExpiredWithoutRefreshIs401(t *testing.T) {
	m := testManager(t)

	old, err := m.IssuePair(time.Now().Add(-time.Hour), testIdentity())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	r, _ := sessionRouter(m, &stubRefresher{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: AccessCookieName, Value: old.AccessToken})
	r.ServeHTTP(w, req)

	if w.Code != 401 {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireSession_GarbageTokenIs401(t *testing.T) {
	m := testManager(t)
	sessions := &stubRefresher{}
	r, _ := sessionRouter(m, sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.AddCookie(&http.Cookie{Name: AccessCookieName, Value: "tampered"})
	req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "whatever"})
	r.ServeHTTP(w, req)

	if w.Code != 401 {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	// Invalid (not expired) tokens never reach the refresher.
	if sessions.calls != 0 {
		t.Fatalf("refresher must not run for invalid tokens")
	}
}
