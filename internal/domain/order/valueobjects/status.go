package valueobjects

type Status string

const (
	StatusPending       Status = "pending"
	StatusOnHold        Status = "on-hold"
	StatusFailed        Status = "failed"
	StatusProcessing    Status = "processing"
	StatusCompleted     Status = "completed"
	StatusCancelled     Status = "cancelled"
	StatusRefunded      Status = "refunded"
	StatusCheckoutDraft Status = "checkout-draft"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusOnHold, StatusFailed, StatusProcessing,
		StatusCompleted, StatusCancelled, StatusRefunded, StatusCheckoutDraft:
		return true
	default:
		return false
	}
}

// IsAwaitingPayment reports whether the payment reminder surfaces should
// still be shown for this status.
func (s Status) IsAwaitingPayment() bool {
	switch s {
	case StatusPending, StatusOnHold, StatusFailed, StatusCheckoutDraft:
		return true
	default:
		return false
	}
}

func (s Status) IsFinal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}
