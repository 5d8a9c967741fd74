package http_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodec(t *testing.T) {
	tokens, err := httpin.NewTokenCodec(testSecret)
	require.NoError(t, err)
	userID := kernel.NewUUID()
	principal, err := identity.NewPrincipal(userID, identity.RoleRestaurantOwner)
	require.NoError(t, err)
	now := time.Now()

	t.Run("round trip", func(t *testing.T) {
		raw, err := tokens.Issue(principal, now, now.Add(time.Hour))
		require.NoError(t, err)

		parsed, err := tokens.Parse(raw)

		require.NoError(t, err)
		assert.True(t, parsed.UserID.IsEqual(userID))
		assert.Equal(t, identity.RoleRestaurantOwner, parsed.Role)
	})

	t.Run("expired", func(t *testing.T) {
		raw, err := tokens.Issue(principal, now.Add(-2*time.Hour), now.Add(-time.Hour))
		require.NoError(t, err)

		_, err = tokens.Parse(raw)
		require.ErrorIs(t, err, httpin.ErrInvalidToken)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		other, err := httpin.NewTokenCodec("another-secret")
		require.NoError(t, err)
		raw, err := other.Issue(principal, now, now.Add(time.Hour))
		require.NoError(t, err)

		_, err = tokens.Parse(raw)
		require.ErrorIs(t, err, httpin.ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"_id":  userID.String(),
			"role": "superuser",
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = tokens.Parse(raw)
		require.ErrorIs(t, err, httpin.ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"_id":  userID.String(),
			"role": string(identity.RoleAdmin),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tokens.Parse(raw)
		require.ErrorIs(t, err, httpin.ErrInvalidToken)
	})

	t.Run("secret is required", func(t *testing.T) {
		_, err := httpin.NewTokenCodec("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAuthenticate(t *testing.T) {
	e := newTestRouter(t, httpin.Handlers{
		ListOrders: listOrdersFunc(func(context.Context, queries.ListOrdersQuery) ([]queries.OrderResponse, error) {
			return []queries.OrderResponse{}, nil
		}),
	})
	adminToken := tokenFor(t, kernel.NewUUID(), identity.RoleAdmin)

	t.Run("x-auth-token header", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/orders", adminToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bearer header", func(t *testing.T) {
		req := newRequest(http.MethodGet, "/api/orders")
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+adminToken)

		rec := record(e, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other scheme", func(t *testing.T) {
		req := newRequest(http.MethodGet, "/api/orders")
		req.Header.Set(echo.HeaderAuthorization, "Basic "+adminToken)

		rec := record(e, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/orders", "not.a.token", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid token")
	})

	t.Run("missing token", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/orders", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("role without capability", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/orders", tokenFor(t, kernel.NewUUID(), identity.RoleDeliveryAgent), "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "view_all_orders")
	})
}
