package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUnauthenticated = errors.New("missing or invalid access token")

// User is the authenticated caller, taken from the hosted backend's access token.
type User struct {
	ID    string
	Email string
	Role  string
}

type userKey struct{}

func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

func UserFromContext(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey{}).(User)
	return u, ok
}

type claims struct {
	jwt.RegisteredClaims
	Email       string `json:"email"`
	Role        string `json:"role"`
	AppMetadata struct {
		Role string `json:"role"`
	} `json:"app_metadata"`
}

type Auth struct {
	secret    []byte
	adminRole string
}

func NewAuth(cfg config.Auth) *Auth {
	return &Auth{
		secret:    []byte(cfg.JWTSecret),
		adminRole: cfg.AdminRole,
	}
}

// Authenticate rejects requests without a valid HS256 bearer token.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.parse(r.Header.Get("Authorization"))
		if err != nil {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequireAdmin must run after Authenticate.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if user.Role != a.adminRole {
			utils.WriteError(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Auth) parse(header string) (User, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return User{}, ErrUnauthenticated
	}

	var c claims
	token, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return User{}, errors.Join(ErrUnauthenticated, err)
	}
	if c.Subject == "" {
		return User{}, ErrUnauthenticated
	}

	// The backend puts custom roles in app_metadata; "role" is usually "authenticated".
	role := c.AppMetadata.Role
	if role == "" {
		role = c.Role
	}
	return User{ID: c.Subject, Email: c.Email, Role: role}, nil
}
