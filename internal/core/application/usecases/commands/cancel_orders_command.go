package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrCancelOrdersCommandIsNotConstructed = errors.New(
	"CancelOrdersCommand must be created via NewCancelOrdersCommand constructor",
)

// CancelOrdersCommand requests cancellation of one or more orders. The bulk
// admin action and the per-order cancel both use it; duplicates are collapsed
// while the request order is kept.
type CancelOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelOrdersCommand(orderIDs ...kernel.UUID) (CancelOrdersCommand, error) {
	if len(orderIDs) == 0 {
		return CancelOrdersCommand{}, errs.NewValueIsRequiredError("order_ids")
	}

	seen := make(map[kernel.UUID]struct{}, len(orderIDs))
	unique := make([]kernel.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return CancelOrdersCommand{}, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return CancelOrdersCommand{
		orderIDs: unique,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrdersCommandIsNotConstructed)
}

// OrderIDs returns a copy of the requested identifiers.
func (c CancelOrdersCommand) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.orderIDs...)
}
