// Package order provides the Order aggregate of the marketplace together with
// its status state machine.
//
// The package includes:
//   - Order: the aggregate root holding items, price snapshot and lifecycle
//   - Item: an order line with a name and unit price copied from the menu
//   - Status: the lifecycle shared with the delivery record
//
// Key business rules:
//   - An order has at least one item, each menu item at most once, each with a positive quantity
//   - The total amount is the sum of unit price times quantity and is fixed at placement
//   - Status follows NOT_DELIVERED -> DELIVERYAGENT_ASSIGNED -> DELIVERED, or CANCELED from any non-terminal state
//   - Only the owner may cancel an order
//
// Status changes record StatusChangedEvent values that are published after the
// surrounding unit of work commits.
package order
