// Package identity describes who is calling the service and what they may do.
//
// Roles form a closed set. Each role grants a fixed set of capabilities and
// HTTP routes are guarded by capability, never by role name.
package identity

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

type Role string

const (
	RoleUser            Role = "user"
	RoleRestaurantOwner Role = "restaurant owner"
	RoleAdmin           Role = "admin"
	RoleDeliveryAgent   Role = "deliveryagent"
)

type Capability string

const (
	CapPlaceOrder           Capability = "place_order"
	CapCancelOwnOrder       Capability = "cancel_own_order"
	CapViewAllOrders        Capability = "view_all_orders"
	CapViewReports          Capability = "view_reports"
	CapAssignDelivery       Capability = "assign_delivery"
	CapViewDeliveries       Capability = "view_deliveries"
	CapUpdateDeliveryStatus Capability = "update_delivery_status"
	CapViewOwnRevenue       Capability = "view_own_revenue"
)

func getRoleCapabilities() map[Role][]Capability {
	return map[Role][]Capability{
		RoleUser: {
			CapPlaceOrder,
			CapCancelOwnOrder,
		},
		RoleRestaurantOwner: {
			CapCancelOwnOrder,
			CapViewOwnRevenue,
		},
		RoleAdmin: {
			CapCancelOwnOrder,
			CapViewAllOrders,
			CapViewReports,
			CapAssignDelivery,
			CapViewDeliveries,
		},
		RoleDeliveryAgent: {
			CapCancelOwnOrder,
			CapUpdateDeliveryStatus,
		},
	}
}

func ParseRole(s string) (Role, error) {
	role := Role(s)
	if _, ok := getRoleCapabilities()[role]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
	return role, nil
}

func (r Role) Can(capability Capability) bool {
	for _, c := range getRoleCapabilities()[r] {
		if c == capability {
			return true
		}
	}
	return false
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID kernel.UUID
	Role   Role
}

func NewPrincipal(userID kernel.UUID, role Role) (Principal, error) {
	if err := userID.Validate(); err != nil {
		return Principal{}, err
	}
	if _, err := ParseRole(string(role)); err != nil {
		return Principal{}, err
	}
	return Principal{UserID: userID, Role: role}, nil
}

func (p Principal) Can(capability Capability) bool {
	return p.Role.Can(capability)
}
