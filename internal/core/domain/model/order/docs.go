// Package order provides the Order aggregate of the restaurant order engine.
//
// The package includes:
//   - Order: the aggregate root holding customer, lines, status and delivery details
//   - Line: an order-owned copy of a menu item's name and price with a quantity
//   - Status: the kitchen workflow state (Pending, Preparing, Ready, Delivered, Canceled)
//   - Type: how the order leaves the restaurant (Dine-in, Takeaway, Delivery)
//   - Patch: a partial update merged into an order
//
// Key business rules:
//   - Orders must have a non-empty identifier and at least one line
//   - Line quantities are at least 1 and prices are never negative
//   - Delivery details are present if and only if the type is Delivery
//   - The identifier and creation time never change after construction
//   - The order total is the sum of quantity × price over all lines
package order
