package entities

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

var statusTransitions = map[Status]map[Status]bool{
	StatusPending:    {StatusConfirmed: true, StatusProcessing: true, StatusCancelled: true, StatusRefunded: true},
	StatusConfirmed:  {StatusProcessing: true, StatusShipped: true, StatusCancelled: true, StatusRefunded: true},
	StatusProcessing: {StatusShipped: true, StatusDelivered: true, StatusCancelled: true, StatusRefunded: true},
	StatusShipped:    {StatusDelivered: true, StatusRefunded: true},
	StatusDelivered:  {StatusRefunded: true},
	StatusCancelled:  {StatusRefunded: true},
	StatusRefunded:   {},
}

var paymentTransitions = map[PaymentStatus]map[PaymentStatus]bool{
	PaymentPending:   {PaymentCompleted: true, PaymentFailed: true},
	PaymentCompleted: {PaymentRefunded: true},
	PaymentFailed:    {PaymentPending: true, PaymentCompleted: true},
	PaymentRefunded:  {},
}

func (s Status) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	return statusTransitions[s][next]
}

// Cancellable reports whether the owning user may still cancel the order.
func (s Status) Cancellable() bool {
	switch s {
	case StatusShipped, StatusDelivered, StatusCancelled:
		return false
	default:
		return true
	}
}

// NotifiesCustomer reports whether entering this status triggers a
// best-effort customer notification.
func (s Status) NotifiesCustomer() bool {
	switch s {
	case StatusShipped, StatusDelivered, StatusRefunded:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) Valid() bool {
	_, ok := paymentTransitions[s]
	return ok
}

func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	return paymentTransitions[s][next]
}
