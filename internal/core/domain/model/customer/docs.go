// Package customer contains the Customer aggregate and its delivery Address aggregate.
//
// A Customer owns any number of Addresses. Addresses are never deleted; they are
// soft-disabled by stamping DisabledOn, which hides them from default listings and
// makes them unusable for new orders while keeping historical orders intact.
//
// Both aggregates validate every field in their constructors and join all
// violations with errors.Join, so a caller sees every problem at once.
package customer
