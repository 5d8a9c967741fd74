package identity_test

import (
	"testing"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"user", "restaurant owner", "admin", "deliveryagent"} {
		role, err := identity.ParseRole(raw)
		require.NoError(t, err)
		assert.Equal(t, identity.Role(raw), role)
	}

	_, err := identity.ParseRole("superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRole_Can(t *testing.T) {
	testCases := []struct {
		role       identity.Role
		capability identity.Capability
		allowed    bool
	}{
		{identity.RoleUser, identity.CapPlaceOrder, true},
		{identity.RoleUser, identity.CapViewAllOrders, false},
		{identity.RoleAdmin, identity.CapAssignDelivery, true},
		{identity.RoleAdmin, identity.CapPlaceOrder, false},
		{identity.RoleAdmin, identity.CapUpdateDeliveryStatus, false},
		{identity.RoleDeliveryAgent, identity.CapUpdateDeliveryStatus, true},
		{identity.RoleDeliveryAgent, identity.CapViewDeliveries, false},
		{identity.RoleRestaurantOwner, identity.CapViewOwnRevenue, true},
		{identity.RoleRestaurantOwner, identity.CapViewReports, false},
		{identity.Role("ghost"), identity.CapCancelOwnOrder, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed, tc.role.Can(tc.capability), "%s / %s", tc.role, tc.capability)
	}
}

func TestNewPrincipal(t *testing.T) {
	userID := kernel.NewUUID()

	p, err := identity.NewPrincipal(userID, identity.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, p.Can(identity.CapViewReports))

	_, err = identity.NewPrincipal(kernel.UUID{}, identity.RoleAdmin)
	require.Error(t, err)

	_, err = identity.NewPrincipal(userID, identity.Role("root"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
