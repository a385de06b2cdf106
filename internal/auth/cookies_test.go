package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func sessionCookies(t *testing.T, w *httptest.ResponseRecorder) (access, refresh *http.Cookie) {
	t.Helper()
	res := w.Result()
	for _, ck := range res.Cookies() {
		switch ck.Name {
		case AccessCookieName:
			access = ck
		case RefreshCookieName:
			refresh = ck
		}
	}
	if access == nil || refresh == nil {
		t.Fatalf("expected both session cookies, got %v", res.Cookies())
	}
	return access, refresh
}

func TestSetSessionCookieAttributes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cw := CookieWriter{Secure: true, AccessTTL: 15 * time.Minute, RefreshTTL: 7 * 24 * time.Hour}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	cw.SetSession(c, TokenPair{AccessToken: "a.b.c", RefreshToken: "d.e.f"})

	access, refresh := sessionCookies(t, w)

	if access.Value != "a.b.c" || refresh.Value != "d.e.f" {
		t.Fatalf("unexpected cookie values: %q %q", access.Value, refresh.Value)
	}
	for _, ck := range []*http.Cookie{access, refresh} {
		if !ck.HttpOnly {
			t.Fatalf("%s must be HttpOnly", ck.Name)
		}
		if !ck.Secure {
			t.Fatalf("%s must be Secure in production", ck.Name)
		}
		if ck.SameSite != http.SameSiteStrictMode {
			t.Fatalf("%s must be SameSite=Strict", ck.Name)
		}
		if ck.Path != "/" {
			t.Fatalf("%s path must be /, got %q", ck.Name, ck.Path)
		}
	}
	if access.MaxAge != int((15 * time.Minute).Seconds()) {
		t.Fatalf("access Max-Age should track the token ttl, got %d", access.MaxAge)
	}
	if refresh.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
		t.Fatalf("refresh Max-Age should track the token ttl, got %d", refresh.MaxAge)
	}
}

func TestSetSessionNotSecureOutsideProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cw := CookieWriter{Secure: false, AccessTTL: time.Minute, RefreshTTL: time.Hour}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	cw.SetSession(c, TokenPair{AccessToken: "a", RefreshToken: "r"})

	access, _ := sessionCookies(t, w)
	if access.Secure {
		t.Fatalf("Secure must be off outside production so local http works")
	}
}

func TestClearSessionExpiresCookiesOnTheWire(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cw := CookieWriter{AccessTTL: time.Minute, RefreshTTL: time.Hour}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	cw.ClearSession(c)

	for _, raw := range w.Result().Header.Values("Set-Cookie") {
		if !strings.Contains(raw, "Max-Age=0") {
			t.Fatalf("clearing cookie must serialize Max-Age=0, got %q", raw)
		}
	}
	access, refresh := sessionCookies(t, w)
	if access.Value != "" || refresh.Value != "" {
		t.Fatalf("cleared cookies must carry empty values")
	}
}

func TestTokensFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessCookieName, Value: "acc"})
	req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: "ref"})

	access, refresh := TokensFromRequest(req)
	if access != "acc" || refresh != "ref" {
		t.Fatalf("got %q %q", access, refresh)
	}
}

func TestTokensFromRequestAbsentCookies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	access, refresh := TokensFromRequest(req)
	if access != "" || refresh != "" {
		t.Fatalf("absent cookies must yield empty strings, got %q %q", access, refresh)
	}
}

func TestTokensFromRequestToleratesMalformedHeader(t *testing.T) {
	// net/http skips malformed pairs and keeps the parsable ones.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", ";;garbage;; accessToken=acc; =broken; refreshToken=ref")

	access, refresh := TokensFromRequest(req)
	if access != "acc" || refresh != "ref" {
		t.Fatalf("got %q %q", access, refresh)
	}
}

func TestTokensFromRequestFirstDefinitionWins(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", "accessToken=first; accessToken=second")

	access, _ := TokensFromRequest(req)
	if access != "first" {
		t.Fatalf("expected first definition to win, got %q", access)
	}
}
