// Package services provides domain services for rules that span more than one
// aggregate of the marketplace.
//
// The package includes:
//   - OrderPricer: turns requested menu items into priced order lines
//   - StatusSynchronizer: repairs an order and its delivery when their statuses diverge
package services
