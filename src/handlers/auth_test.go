package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/resumevault/resume-vault/src/models"
	"github.com/resumevault/resume-vault/src/repositories/mock"
	"github.com/resumevault/resume-vault/src/services"
	"golang.org/x/crypto/bcrypt"
)

func newAuthTestHandler(t *testing.T, admins *mock.AdminRepository, sessions *mock.SessionRepository) *AuthHandler {
	t.Helper()
	return NewAuthHandler(services.NewSessionService(admins, sessions, 24), 24)
}

func postLogin(t *testing.T, handler *AuthHandler, payload string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.HandleLogin(c)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return w, body
}

func TestHandleLogin_MissingFields(t *testing.T) {
	handler := newAuthTestHandler(t, mock.NewAdminRepository(), mock.NewSessionRepository())

	for _, payload := range []string{`{}`, `{"email":"a@b.com"}`, `{"password":"x"}`, `not json`} {
		w, body := postLogin(t, handler, payload)
		if w.Code != http.StatusBadRequest {
			t.Errorf("payload %q: expected status 400, got %d", payload, w.Code)
		}
		if body["error"] != "Email and password are required" {
			t.Errorf("payload %q: unexpected error %v", payload, body["error"])
		}
	}
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	handler := newAuthTestHandler(t, mock.NewAdminRepository(), mock.NewSessionRepository())

	w, body := postLogin(t, handler, `{"email":"nobody@example.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
	if body["error"] != "Invalid credentials" {
		t.Errorf("unexpected error: %v", body["error"])
	}
}

func TestHandleLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	admins := mock.NewAdminRepository()
	admins.GetByEmailFunc = func(ctx context.Context, email string) (*models.AdminUser, error) {
		return &models.AdminUser{ID: uuid.New(), Email: email, PasswordHash: string(hash)}, nil
	}
	handler := newAuthTestHandler(t, admins, mock.NewSessionRepository())

	w, body := postLogin(t, handler, `{"email":"admin@example.com","password":"secret-password"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if body["message"] != "Login successful" {
		t.Errorf("unexpected message: %v", body["message"])
	}
	if body["session_token"] == "" || body["session_token"] == nil {
		t.Error("expected a session token")
	}
	if body["expires_in_hours"] != float64(24) {
		t.Errorf("expected expires_in_hours 24, got %v", body["expires_in_hours"])
	}
}

func TestHandleLogout_Success(t *testing.T) {
	sessions := mock.NewSessionRepository()
	handler := newAuthTestHandler(t, mock.NewAdminRepository(), sessions)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	c.Request.Header.Set("Authorization", "Bearer the-token")

	handler.HandleLogout(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["message"] != "Logout successful" {
		t.Errorf("unexpected message: %v", body["message"])
	}

	deletes := sessions.Calls["DeleteByToken"]
	if len(deletes) != 1 || deletes[0].(string) != "the-token" {
		t.Errorf("expected the-token deleted, got %v", deletes)
	}
}
