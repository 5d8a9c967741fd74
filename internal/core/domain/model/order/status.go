package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state shared by an order and its delivery record.
//
//	NOT_DELIVERED -> DELIVERYAGENT_ASSIGNED -> DELIVERED
//	      |                    |
//	      +------> CANCELED <--+
//
// DELIVERED and CANCELED are terminal.
type Status int

const (
	Unknown Status = iota

	NotDelivered

	DeliveryAgentAssigned

	Delivered

	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:               "UNKNOWN",
		NotDelivered:          "NOT_DELIVERED",
		DeliveryAgentAssigned: "DELIVERYAGENT_ASSIGNED",
		Delivered:             "DELIVERED",
		Canceled:              "CANCELED",
	}
}

// ParseStatus maps the external representation back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// AssignAgent is the transition taken when an admin binds a delivery person.
func (s Status) AssignAgent() (Status, error) {
	switch {
	case s == DeliveryAgentAssigned:
		return Unknown, errs.NewConflictError("order status", s.String())
	case s.IsTerminal():
		return Unknown, errs.NewInvalidStateError("order", s.String(), "cannot assign a delivery agent")
	case s != NotDelivered:
		return Unknown, s.Validate()
	}
	return DeliveryAgentAssigned, nil
}

// Cancel is the transition taken when the owner withdraws an order.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidStateError("order", s.String(), "cannot be canceled")
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Canceled, nil
}

// Finish is the transition reported by the assigned delivery agent. Only
// DELIVERED and CANCELED may be reported.
func (s Status) Finish(target Status) (Status, error) {
	if target != Delivered && target != Canceled {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s cannot be reported by a delivery agent", target),
		)
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidStateError("order", s.String(), "status can no longer change")
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return target, nil
}
