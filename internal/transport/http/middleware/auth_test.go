package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aroundhq/aroundb/internal/domain"
	"github.com/aroundhq/aroundb/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeVerifier struct {
	verify func(raw string) (string, error)
}

func (f *fakeVerifier) Verify(raw string) (string, error) {
	return f.verify(raw)
}

// newProtectedEngine mounts the gate in front of a probe handler that
// records whether it ran and with which identity.
func newProtectedEngine(v middleware.TokenVerifier) (*gin.Engine, *string) {
	var seenID string
	r := gin.New()
	r.GET("/protected", middleware.Auth(v), func(c *gin.Context) {
		seenID = c.GetString("userID")
		c.Status(http.StatusOK)
	})
	return r, &seenID
}

func request(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingHeader_Returns401AndHaltsHandler(t *testing.T) {
	v := &fakeVerifier{verify: func(string) (string, error) {
		t.Fatal("verify must not be called without a Bearer header")
		return "", nil
	}}
	r, seenID := newProtectedEngine(v)

	w := request(t, r, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if *seenID != "" {
		t.Error("downstream handler ran despite missing token")
	}
}

func TestAuth_NonBearerScheme_Returns401(t *testing.T) {
	v := &fakeVerifier{verify: func(string) (string, error) {
		t.Fatal("verify must not be called for a non-Bearer header")
		return "", nil
	}}
	r, _ := newProtectedEngine(v)

	for _, header := range []string{"Token abc", "bearer abc", "Basic dXNlcg==", "Bearer"} {
		if w := request(t, r, header); w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestAuth_InvalidToken_Returns401(t *testing.T) {
	v := &fakeVerifier{verify: func(string) (string, error) {
		return "", domain.ErrTokenInvalid
	}}
	r, seenID := newProtectedEngine(v)

	w := request(t, r, "Bearer garbage")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if *seenID != "" {
		t.Error("downstream handler ran despite invalid token")
	}
}

func TestAuth_ValidToken_AttachesSubjectVerbatim(t *testing.T) {
	v := &fakeVerifier{verify: func(raw string) (string, error) {
		if raw != "good-token" {
			t.Errorf("verify received %q", raw)
		}
		return "user-42", nil
	}}
	r, seenID := newProtectedEngine(v)

	w := request(t, r, "Bearer good-token")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if *seenID != "user-42" {
		t.Errorf("handler saw identity %q, want user-42", *seenID)
	}
}
