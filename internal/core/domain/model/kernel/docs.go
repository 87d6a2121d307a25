// Package kernel provides core domain primitives shared by the order engine.
//
// The package includes:
//   - IDGenerator: produces unique opaque identifiers for orders and menu items
//   - Money: a non-negative-safe decimal amount with two-digit formatting
//   - DayKey / HourLabel: local calendar formatting used for grouping and analytics
//
// These primitives are immutable and safe for concurrent use.
package kernel
