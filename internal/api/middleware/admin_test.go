package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/domain"
	"github.com/bistroboss/bistro-api/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]domain.User
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *stubUserRepo) FindAll(context.Context) ([]domain.User, error) { return nil, nil }

func (r *stubUserRepo) Insert(context.Context, *domain.User) (*ports.InsertResult, error) {
	return nil, nil
}

func (r *stubUserRepo) PromoteByID(context.Context, string) (*ports.UpdateResult, error) {
	return nil, nil
}

func assertForbiddenBody(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if body["error"] != true || body["message"] != "forbidden access" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestAdmin_Allows(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{users: map[string]domain.User{
		"boss@x.com": {Email: "boss@x.com", Role: domain.RoleAdmin},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyEmail, "boss@x.com")

	called := false
	mw := Admin(repo)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdmin_ForbidsGuest(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{users: map[string]domain.User{
		"guest@x.com": {Email: "guest@x.com", Role: domain.RoleGuest},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyEmail, "guest@x.com")

	mw := Admin(repo)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertForbiddenBody(t, rec)
}

func TestAdmin_ForbidsUnknownUser(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{users: map[string]domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextKeyEmail, "ghost@x.com")

	mw := Admin(repo)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertForbiddenBody(t, rec)
}
