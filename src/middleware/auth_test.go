package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/resumevault/resume-vault/src/models"
)

// stubVerifier implements SessionVerifier for middleware tests
type stubVerifier struct {
	ident *models.SessionIdentity
	err   error
}

func (s *stubVerifier) Verify(ctx context.Context, token string) (*models.SessionIdentity, error) {
	return s.ident, s.err
}

func authRequest(t *testing.T, verifier SessionVerifier, authHeader string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	_, router := gin.CreateTestContext(w)
	router.Use(AdminAuth(verifier))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"admin_id":    c.GetString("admin_id"),
			"admin_email": c.GetString("admin_email"),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return w, body
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	w, body := authRequest(t, &stubVerifier{}, "")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
	if body["error"] != "Missing or invalid authorization header" {
		t.Errorf("unexpected error: %v", body["error"])
	}
}

func TestAdminAuth_NotBearerScheme(t *testing.T) {
	w, body := authRequest(t, &stubVerifier{}, "Basic dXNlcjpwYXNz")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
	if body["error"] != "Missing or invalid authorization header" {
		t.Errorf("unexpected error: %v", body["error"])
	}
}

func TestAdminAuth_UnknownToken(t *testing.T) {
	w, body := authRequest(t, &stubVerifier{}, "Bearer some-token")

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
	if body["error"] != "Invalid or expired session" {
		t.Errorf("unexpected error: %v", body["error"])
	}
}

func TestAdminAuth_VerifierError(t *testing.T) {
	w, _ := authRequest(t, &stubVerifier{err: errors.New("db down")}, "Bearer some-token")

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestAdminAuth_Success(t *testing.T) {
	adminID := uuid.New()
	verifier := &stubVerifier{
		ident: &models.SessionIdentity{
			AdminID:    adminID,
			AdminEmail: "admin@example.com",
			ExpiresAt:  time.Now().UTC().Add(time.Hour),
		},
	}

	w, body := authRequest(t, verifier, "Bearer valid-token")

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if body["admin_id"] != adminID.String() {
		t.Errorf("expected admin_id %s, got %v", adminID, body["admin_id"])
	}
	if body["admin_email"] != "admin@example.com" {
		t.Errorf("expected admin_email set, got %v", body["admin_email"])
	}
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		header string
		want   string
	}{
		{"", ""},
		{"Bearer abc123", "abc123"},
		{"Bearer ", ""},
		{"bearer abc123", ""},
		{"Token abc123", ""},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			c.Request.Header.Set("Authorization", tc.header)
		}
		if got := BearerToken(c); got != tc.want {
			t.Errorf("header %q: expected %q, got %q", tc.header, tc.want, got)
		}
	}
}
