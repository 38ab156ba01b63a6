package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/bistro-api/internal/core/service"
)

func TestTokenHandler_Issue(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", time.Hour)
	handler := NewTokenHandler(tokens)

	body := strings.NewReader(`{"email":"a@x.com","name":"Alice"}`)
	req := httptest.NewRequest(http.MethodPost, "/jwt", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Issue(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] == "" {
		t.Fatalf("expected a non-empty token")
	}

	// Round-trip: the issued token must verify and carry the claims.
	claims, err := tokens.Verify(resp["token"])
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.Email() != "a@x.com" || claims["name"] != "Alice" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestTokenHandler_Issue_MissingEmail(t *testing.T) {
	e := echo.New()
	handler := NewTokenHandler(service.NewTokenService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Issue(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTokenHandler_Issue_InvalidPayload(t *testing.T) {
	e := echo.New()
	handler := NewTokenHandler(service.NewTokenService("secret", time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Issue(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
