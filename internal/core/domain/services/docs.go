// Package services provides domain services that work across aggregates.
//
// The package includes:
//   - OrderTotalCalculator: derives an order total from its line items
//
// Services here are pure: they take loaded aggregates and return values or
// mutate the aggregates they are given; persistence stays in the use cases.
package services
