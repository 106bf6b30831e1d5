// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the order system. It implements checks
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderValidator: A domain service that admits new orders against the
//     menu catalog and table occupancy
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
