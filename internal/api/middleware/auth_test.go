package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/secureweather/weather-gateway/internal/api"
	"github.com/secureweather/weather-gateway/internal/api/middleware"
	"github.com/secureweather/weather-gateway/internal/pkg/token"
)

func runAuth(t *testing.T, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := middleware.Auth(token.NewService("abc123"))
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	signed, err := token.NewService("abc123").Issue("alice@x.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := middleware.Auth(token.NewService("abc123"))
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("email") != "alice@x.com" {
			t.Fatalf("email not set in context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, called := runAuth(t, "")
	if called {
		t.Fatalf("next must not run without a header")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Body.String() != `{"error":"Missing token"}`+"\n" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthMiddleware_HeaderWithoutToken(t *testing.T) {
	rec, called := runAuth(t, "Bearer")
	if called {
		t.Fatalf("next must not run without a token segment")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Body.String() != `{"error":"Invalid token"}`+"\n" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	signed, err := token.NewService("abc123").Issue("alice@x.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	tampered := signed[:len(signed)-2] + "xx"

	rec, called := runAuth(t, "Bearer "+tampered)
	if called {
		t.Fatalf("next must not run with a tampered token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongScheme(t *testing.T) {
	rec, called := runAuth(t, "Token abc")
	if called {
		t.Fatalf("next must not run with a non-bearer scheme")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
