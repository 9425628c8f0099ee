package notifier

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Owner is the delivery target for a broadcast notification. Phone must be
// non-empty; owners without one never reach the notifier (the live push path
// still covers them).
type Owner struct {
	ID       uuid.UUID
	Username string
	Phone    string
}

// StayDetails is the subset of a broadcast request worth putting in an SMS.
type StayDetails struct {
	Location     string
	CheckInDate  time.Time
	CheckOutDate time.Time
	Guests       int
}

// Notifier delivers a best-effort side-channel message to one owner. Errors
// are logged by the caller and never propagated to the customer.
type Notifier interface {
	NotifyOwner(ctx context.Context, owner Owner, details StayDetails) error
}

// Dispatcher is the coordinator-facing port: enqueue and forget.
type Dispatcher interface {
	Dispatch(owner Owner, details StayDetails)
}
