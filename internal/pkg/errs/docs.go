// Package errs provides the standardized error types used across the kitchen
// application. Three error families matter to callers: required/invalid values
// (malformed input), object-not-found (a referenced entity does not exist), and
// invalid-state (the entity exists but its state forbids the operation).
// A version-conflict family covers optimistic locking failures at the
// persistence boundary.
//
// Each family follows the same pattern: a sentinel error variable, a struct
// type carrying details, constructors with and without a cause, an Error()
// method for formatting, and Unwrap() so errors.Is can classify any error
// against its sentinel. Adapters translate sentinels to transport codes;
// the core never inspects message text.
package errs
