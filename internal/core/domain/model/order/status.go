package order

import (
	"fmt"
	"strings"

	"ecommerce/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Active ──┬──> Completed
//	         └──> Canceled
//
// Completed and Canceled are final.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Active
	Completed
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Active:    "active",
		Completed: "completed",
		Canceled:  "canceled",
	}
}

// ParseStatus converts the stored or requested status name into a Status.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if status != Unknown && name == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate accepts Active, Completed and Canceled.
func (s Status) Validate() error {
	if s != Active && s != Completed && s != Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Complete transitions Active to Completed.
func (s Status) Complete() (Status, error) {
	if s != Active {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Completed, nil
}

// Cancel computes the outcome of a cancel request and the resulting status.
// Only Unknown or out-of-range values produce an error.
func (s Status) Cancel() (Status, CancelOutcome, error) {
	switch s { //nolint:exhaustive // Unknown falls through to the error below
	case Active:
		return Canceled, OutcomeCanceled, nil
	case Completed:
		return Completed, OutcomeRejectedAlreadyCompleted, nil
	case Canceled:
		return Canceled, OutcomeAlreadyCanceled, nil
	}
	return Unknown, OutcomeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%s is not a valid status to cancel", s.String()),
	)
}
