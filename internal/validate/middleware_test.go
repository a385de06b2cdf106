package validate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,role"`
}

func bindRouter(invoked *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	v := New()
	r := gin.New()
	r.POST("/x", Bind[sampleRequest](v), func(c *gin.Context) {
		*invoked = true
		req := Bound[sampleRequest](c)
		c.JSON(200, gin.H{"name": req.Name})
	})
	return r
}

func postJSON(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestBind_ValidBodyReachesHandler(t *testing.T) {
	var invoked bool
	r := bindRouter(&invoked)

	w := postJSON(r, `{"name":"Ada","email":"ada@acme.test","role":"admin"}`)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !invoked {
		t.Fatalf("handler should have run")
	}
}

func TestBind_InvalidBodyShortCircuits(t *testing.T) {
	var invoked bool
	r := bindRouter(&invoked)

	w := postJSON(r, `{"name":"","email":"not-an-email","role":"root"}`)
	if w.Code != 400 {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if invoked {
		t.Fatalf("handler must not run with an invalid body")
	}

	var resp struct {
		Success bool     `json:"success"`
		Errors  []string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected success=false")
	}
	// All three violations reported at once, not just the first.
	if len(resp.Errors) != 3 {
		t.Fatalf("expected 3 violations, got %v", resp.Errors)
	}
	joined := strings.Join(resp.Errors, "; ")
	for _, want := range []string{"name", "email", "role"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("violations should use json field names, got %v", resp.Errors)
		}
	}
}

func TestBind_EmptyBodyIs400(t *testing.T) {
	var invoked bool
	r := bindRouter(&invoked)

	w := postJSON(r, "")
	if w.Code != 400 {
		t.Fatalf("expected 400 for empty body, got %d", w.Code)
	}
	if invoked {
		t.Fatalf("handler must not run")
	}
}

func TestBind_MalformedJSONIs400(t *testing.T) {
	var invoked bool
	r := bindRouter(&invoked)

	w := postJSON(r, `{"name": `)
	if w.Code != 400 {
		t.Fatalf("expected 400 for malformed json, got %d", w.Code)
	}
	if invoked {
		t.Fatalf("handler must not run")
	}
}

func TestViolationsMessages(t *testing.T) {
	v := New()
	err := v.Struct(&sampleRequest{Name: "", Email: "nope", Role: "root"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	got := Violations(err)
	want := []string{
		"name is required",
		"email must be a valid email address",
		"role must be one of user, branch_admin, admin, superadmin",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("violation %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
