// Package kernel provides the shared domain primitives of the back-office.
//
// The package includes:
//   - UUID: identifier value object used by every aggregate
//   - Money: fixed-point amount with exactly two fractional digits
//   - DomainEvent: contract for facts recorded by aggregates and relayed through the outbox
//
// Value objects are immutable; their zero values are invalid and are rejected by Validate.
package kernel
