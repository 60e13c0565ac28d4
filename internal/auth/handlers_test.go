package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/redis/go-redis/v9"
)

func TestRegisterAndLoginHandlers(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("user@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "user", "user@example.com", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService("secret", time.Hour, mock, nil)
	app := fiber.New()
	RegisterRoutes(app.Group("/api/auth"), svc)

	body, _ := json.Marshal(RegisterRequest{Username: "user", Email: "user@example.com", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status: %v", err)
	}

	var registered map[string]any
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &registered); err != nil {
		t.Fatalf("decode register body: %v", err)
	}
	if _, ok := registered["password"]; ok {
		t.Fatalf("password must not be serialized")
	}
	if _, ok := registered["passwordHash"]; ok {
		t.Fatalf("password hash must not be serialized")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterHandlerValidation(t *testing.T) {
	svc := NewService("secret", time.Hour, nil, nil)
	app := fiber.New()
	RegisterRoutes(app.Group("/api/auth"), svc)

	body, _ := json.Marshal(RegisterRequest{Username: "user", Email: "user@example.com", Password: "short"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for short password")
	}
}

func TestLoginHandlerInvalid(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, username, email, password_hash`).
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	svc := NewService("secret", time.Hour, mock, nil)
	app := fiber.New()
	RegisterRoutes(app.Group("/api/auth"), svc)

	body, _ := json.Marshal(LoginRequest{Email: "ghost@example.com", Password: "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected invalid login to map to 400")
	}
}

func TestLogoutHandler(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	svc := NewService("secret", time.Hour, nil, rdb)
	app := fiber.New()
	RegisterRoutes(app.Group("/api/auth"), svc)

	token, _ := svc.SignToken("user-1", false)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("logout status: %v", err)
	}

	// the same token must now be rejected
	req = httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected revoked token to be rejected, got %d", resp.StatusCode)
	}
}

func TestRegisterHandlerBadPayload(t *testing.T) {
	svc := NewService("secret", time.Hour, nil, nil)
	app := fiber.New()
	RegisterRoutes(app.Group("/api/auth"), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte(`{`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request")
	}
}
