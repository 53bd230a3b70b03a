// Package order provides the Order aggregate, its line items and its lifecycle.
//
// The package includes:
//   - Order: aggregate root holding customer, address, derived total and status
//   - Item: a line of an order with a quantity and a snapshot of the line price
//   - Status: the lifecycle state machine (active, completed, canceled)
//   - CancelOutcome: the result of a cancel request, reported instead of an error
//   - Canceled, Completed and TotalChanged domain events
//
// Key business rules:
//   - A new order is active with a total of 0.00
//   - The total is always the sum of the item line totals; it is never edited directly
//   - Only active orders can be canceled; completed and canceled orders report an outcome
//   - Item line totals are computed from the product price at write time and never track later price changes
package order
