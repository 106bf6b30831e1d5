// Package kernel provides the shared domain primitives of the kitchen system.
//
// It contains two value objects used throughout the model:
//   - UUID: unique identifier for entities and aggregates
//   - Price: a monetary amount in minor currency units with exact comparison
//
// Both are immutable and safe for concurrent use. They validate themselves on
// construction so the rest of the domain can rely on them being well formed.
package kernel
