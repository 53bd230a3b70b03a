package order

// CancelOutcome is the result of a cancel request. Rejections are outcomes, not errors,
// so a batch can report a per-order result without aborting.
type CancelOutcome int

const (
	OutcomeUnknown CancelOutcome = iota
	// OutcomeCanceled means the order moved from active to canceled.
	OutcomeCanceled
	// OutcomeRejectedAlreadyCompleted means the order was completed and stays completed.
	OutcomeRejectedAlreadyCompleted
	// OutcomeAlreadyCanceled means the order was already canceled; nothing changed.
	OutcomeAlreadyCanceled
)

func (o CancelOutcome) String() string {
	switch o {
	case OutcomeCanceled:
		return "canceled"
	case OutcomeRejectedAlreadyCompleted:
		return "rejected_already_completed"
	case OutcomeAlreadyCanceled:
		return "already_canceled"
	default:
		return "unknown"
	}
}

// Changed reports whether the outcome altered the stored order.
func (o CancelOutcome) Changed() bool {
	return o == OutcomeCanceled
}
