package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	jwtSecret  = "0123456789abcdef0123456789abcdef"
	customerID = "user-1"
	adminID    = "admin-1"
)

func testAuth() *middleware.Auth {
	return middleware.NewAuth(config.Auth{JWTSecret: jwtSecret, AdminRole: "admin"})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func token(t *testing.T, sub, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": "authenticated",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	if role != "" {
		claims["app_metadata"] = map[string]any{"role": role}
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

type initer interface {
	Init(r chi.Router)
}

func serve(h initer, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	h.Init(r)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
