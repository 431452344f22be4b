package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/verdantis/nursery-system/internal/core/domain"
)

func TestGate_Allows(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(identityKey, &domain.Identity{Email: "m@nursery.test", Role: domain.RoleManager})

	called := false
	mw := Gate(domain.RoleManager)
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

func TestGate_WrongRoleRedirectsToAccessDenied(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(identityKey, &domain.Identity{Email: "c@nursery.test", Role: domain.RoleCustomer})

	mw := Gate(domain.RoleManager, domain.RoleAgriculturalEngineer)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/access-denied" {
		t.Fatalf("expected redirect to /access-denied, got %q", loc)
	}
}

func TestGate_NoIdentityRedirectsToRegister(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Gate(domain.RoleManager)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/register" {
		t.Fatalf("expected redirect to /register, got %q", loc)
	}
}

// An anonymous caller must be sent to registration even when the required
// roles could never match; the no-identity branch wins.
func TestGate_NoIdentityTakesPrecedence(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Gate(domain.RoleManager, domain.RoleCustomer, domain.RoleDeliveryCompany)
	handler := mw(func(c echo.Context) error { return nil })

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if loc := rec.Header().Get("Location"); loc != "/register" {
		t.Fatalf("expected /register, got %q", loc)
	}
}

func TestGate_JSONClientGetsEnvelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(identityKey, &domain.Identity{Email: "c@nursery.test", Role: domain.RoleCustomer})

	mw := Gate(domain.RoleManager)
	handler := mw(func(c echo.Context) error { return nil })

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var body redirectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Redirect != "/access-denied" {
		t.Fatalf("expected redirect field /access-denied, got %q", body.Redirect)
	}
}

func TestGate_JSONClientNoIdentityGets401(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Gate(domain.RoleManager)
	handler := mw(func(c echo.Context) error { return nil })

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body redirectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Redirect != "/register" {
		t.Fatalf("expected redirect field /register, got %q", body.Redirect)
	}
}

func TestGate_LegacyEngineerSpellingGranted(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	// identity built by the session reader: raw roles already canonicalized
	c.Set(identityKey, &domain.Identity{
		Email: "e@nursery.test",
		Roles: domain.CanonicalRoles([]string{"agriculture_engineer"}),
	})

	called := false
	mw := Gate(domain.RoleAgriculturalEngineer)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("legacy engineer spelling should pass the gate")
	}
}
