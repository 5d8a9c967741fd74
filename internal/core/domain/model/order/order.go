package order

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxDeliveryAddressLength is the longest delivery address accepted, in characters.
const MaxDeliveryAddressLength = 255

// MaxTotalAmount is the largest order total the orders table can store
// (numeric(14,2)).
var MaxTotalAmount = decimal.RequireFromString("999999999999.99")

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root for a customer's purchase from a restaurant.
//
// The item list, total amount, owner and number are fixed at placement.
// Afterwards only the status and updatedAt move, through AssignDeliveryAgent,
// Cancel and Finish.
type Order struct {
	kernel.EventRecorder

	id kernel.UUID

	number string

	userID kernel.UUID

	items []Item

	totalAmount kernel.Money

	deliveryAddress string

	status Status

	createdAt time.Time

	updatedAt *time.Time

	isConstructed bool
}

// FormatNumber renders a sequence value as an order number, zero padded to
// three digits. Values above 999 keep their natural width.
func FormatNumber(sequence int64) (string, error) {
	if sequence < 1 {
		return "", errs.NewValueIsOutOfRangeError("order sequence", sequence, 1, "unbounded")
	}
	return fmt.Sprintf("%03d", sequence), nil
}

// NewOrder creates an order in NOT_DELIVERED status and records a PlacedEvent.
// The total amount is computed from the items.
func NewOrder(
	id kernel.UUID,
	number string,
	userID kernel.UUID,
	items []Item,
	deliveryAddress string,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:        NotDelivered,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setUserID(userID),
		order.setItems(items),
		order.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	order.totalAmount = kernel.ZeroMoney()
	for _, item := range order.items {
		order.totalAmount = order.totalAmount.Add(item.Subtotal())
	}
	if order.totalAmount.Amount().GreaterThan(MaxTotalAmount) {
		return nil, errs.NewValueIsOutOfRangeError("totalAmount", order.totalAmount.String(), "0.00", MaxTotalAmount.StringFixed(2))
	}

	order.Record(PlacedEvent{
		ID:          kernel.NewUUID(),
		OrderID:     order.id,
		OrderNumber: order.number,
		UserID:      order.userID,
		TotalAmount: order.totalAmount.String(),
		At:          now,
	})

	return order, nil
}

// RestoreOrder rebuilds an order from persisted state without raising events.
func RestoreOrder(
	id kernel.UUID,
	number string,
	userID kernel.UUID,
	items []Item,
	totalAmount kernel.Money,
	deliveryAddress string,
	status Status,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setUserID(userID),
		order.setItems(items),
		order.setDeliveryAddress(deliveryAddress),
		order.setTotalAmount(totalAmount),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate checks that the order was built by NewOrder or RestoreOrder.
//
// Returns:
//   - nil for a constructed order
//   - ErrOrderIsNotConstructed for a nil pointer or a zero value
//
// Repositories call it before every write.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares orders by identity. Two snapshots of the same order are
// equal even when their statuses differ.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the unique identifier of the order.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number, e.g. "007".
// It is for display only and carries no uniqueness guarantee.
func (o *Order) Number() string {
	return o.number
}

// UserID returns the customer who placed the order. It never changes.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the order lines in placement order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the sum of unit price times quantity over all lines,
// computed once at placement. Later menu price changes do not affect it.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// DeliveryAddress returns the address the order is delivered to.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Status returns the current lifecycle status.
//
// Example:
//
//	if o.Status().IsTerminal() {
//	    return errs.NewInvalidStateError("order", o.Status().String(), "order is closed")
//	}
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last status change, or nil when the
// status never changed.
func (o *Order) UpdatedAt() *time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// AssignDeliveryAgent moves a NOT_DELIVERED order to DELIVERYAGENT_ASSIGNED
// and records a StatusChangedEvent.
//
// Returns:
//   - nil when the transition was applied
//   - a ConflictError when an agent is already assigned
//   - an InvalidStateError when the order is DELIVERED or CANCELED
//
// Example:
//
//	if err := o.AssignDeliveryAgent(clock.Now()); err != nil {
//	    return nil, err
//	}
//	err = uow.OrderRepository().Update(ctx, o)
func (o *Order) AssignDeliveryAgent(now time.Time) error {
	next, err := o.status.AssignAgent()
	if err != nil {
		return err
	}

	o.changeStatus(next, now)
	return nil
}

// Cancel withdraws the order on behalf of requesterID and records a
// StatusChangedEvent. The state check comes before the ownership check.
//
// Returns:
//   - nil when the order is now CANCELED
//   - an InvalidStateError when the order is already DELIVERED or CANCELED
//   - a ForbiddenError when requesterID did not place the order
func (o *Order) Cancel(requesterID kernel.UUID, now time.Time) error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}

	if !o.IsOwnedBy(requesterID) {
		return errs.NewForbiddenError("cancel order", "requester is not the owner of the order")
	}

	o.changeStatus(next, now)
	return nil
}

// Finish applies a DELIVERED or CANCELED status reported by a delivery agent
// and records a StatusChangedEvent.
//
// Returns:
//   - nil when the status was applied
//   - a ValueIsInvalidError when target is neither DELIVERED nor CANCELED
//   - an InvalidStateError when the order is already DELIVERED or CANCELED
func (o *Order) Finish(target Status, now time.Time) error {
	next, err := o.status.Finish(target)
	if err != nil {
		return err
	}

	o.changeStatus(next, now)
	return nil
}

func (o *Order) changeStatus(next Status, now time.Time) {
	o.Record(StatusChangedEvent{
		ID:      kernel.NewUUID(),
		OrderID: o.id,
		From:    o.status.String(),
		To:      next.String(),
		At:      now,
	})

	o.status = next
	o.updatedAt = &now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.MenuItemID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("menu item %s is listed more than once", item.MenuItemID()),
			)
		}
		seen[item.MenuItemID()] = struct{}{}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if n := utf8.RuneCountInString(address); n > MaxDeliveryAddressLength {
		return errs.NewValueIsOutOfRangeError("delivery address length", n, 1, MaxDeliveryAddressLength)
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setTotalAmount(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.totalAmount = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
