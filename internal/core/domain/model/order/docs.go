// Package order implements the Order aggregate of the kitchen system.
//
// An order belongs to one of three channels (eat-in, takeout, delivery) and
// moves through a fixed lifecycle:
//
//	WAITING -> ACCEPTED -> SERVED -> COMPLETED            (eat-in, takeout)
//	WAITING -> ACCEPTED -> SERVED -> DELIVERING -> DELIVERED -> COMPLETED  (delivery)
//
// No transition skips a stage or reverses, and COMPLETED is terminal. The
// package contains:
//   - Order: the aggregate root holding channel, status, line items, and the
//     channel-specific delivery address or table reference
//   - Status and Type: closed enums; Status owns the transition table
//   - LineItem: a menu selection with a price frozen at order time
//
// Repository-backed creation rules (menu existence, display flags, price
// snapshots, table occupancy) live in the services package; this package
// enforces everything that can be decided from the order alone.
package order
