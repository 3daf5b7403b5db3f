package entities

import "fmt"

// Status is the order status. The zero value is not a valid status.
type Status string

const (
	StatusPending          Status = "pending"
	StatusPaymentReview    Status = "payment_review"
	StatusPaid             Status = "paid"
	StatusPreparing        Status = "preparing"
	StatusReadyForDelivery Status = "ready_for_delivery"
	StatusShipped          Status = "shipped"
	StatusDelivered        Status = "delivered"
	StatusCancelled        Status = "cancelled"
)

// statusFlow is the fixed progression an order follows. Cancelled is off the flow.
var statusFlow = [...]Status{
	StatusPending,
	StatusPaymentReview,
	StatusPaid,
	StatusPreparing,
	StatusReadyForDelivery,
	StatusShipped,
	StatusDelivered,
}

// StatusFlow returns the ordered, non-cancelled statuses.
func StatusFlow() []Status {
	flow := make([]Status, len(statusFlow))
	copy(flow, statusFlow[:])
	return flow
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

func (s Status) Valid() bool {
	return s == StatusCancelled || s.Step() >= 0
}

// Step returns the position of s in the status flow, or -1 for cancelled and unknown values.
func (s Status) Step() int {
	for i, st := range statusFlow {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the status following s in the flow.
func (s Status) Next() (Status, bool) {
	step := s.Step()
	if step < 0 || step == len(statusFlow)-1 {
		return "", false
	}
	return statusFlow[step+1], true
}

func (s Status) String() string {
	return string(s)
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	status, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}
