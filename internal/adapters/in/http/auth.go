package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AuthTokenHeader carries the signed token. Authorization: Bearer is accepted
// as well.
const AuthTokenHeader = "x-auth-token"

const principalContextKey = "principal"

var ErrInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	UserID string `json:"_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies HS256 tokens carrying a user id and a role.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) (*TokenCodec, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("JWT secret")
	}
	return &TokenCodec{secret: []byte(secret)}, nil
}

// Issue signs a token for principal that expires at expiresAt.
func (tc *TokenCodec) Issue(principal identity.Principal, issuedAt, expiresAt time.Time) (string, error) {
	claims := tokenClaims{
		UserID: principal.UserID.String(),
		Role:   string(principal.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.secret)
}

// Parse verifies raw and returns the principal it names. Every failure wraps
// ErrInvalidToken.
func (tc *TokenCodec) Parse(raw string) (identity.Principal, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return tc.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return identity.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return identity.Principal{}, fmt.Errorf("%w: claim _id: %w", ErrInvalidToken, err)
	}

	principal, err := identity.NewPrincipal(userID, identity.Role(claims.Role))
	if err != nil {
		return identity.Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return principal, nil
}

// Authenticate rejects requests without a valid token with 401 and stores the
// caller's principal in the echo context.
func Authenticate(tokens *TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c.Request())
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied: no token provided")
			}

			principal, err := tokens.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied: invalid token").SetInternal(err)
			}

			c.Set(principalContextKey, principal)
			return next(c)
		}
	}
}

// RequireCapability lets the request through only when the authenticated
// principal's role grants capability.
func RequireCapability(capability identity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied: no token provided")
			}
			if !principal.Can(capability) {
				return echo.NewHTTPError(
					http.StatusForbidden,
					fmt.Sprintf("access denied: role %q cannot %s", principal.Role, capability),
				)
			}
			return next(c)
		}
	}
}

func PrincipalFrom(c echo.Context) (identity.Principal, bool) {
	principal, ok := c.Get(principalContextKey).(identity.Principal)
	return principal, ok
}

func tokenFromRequest(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(AuthTokenHeader)); token != "" {
		return token
	}

	scheme, token, found := strings.Cut(r.Header.Get(echo.HeaderAuthorization), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
