package broadcast

import (
	"time"

	"github.com/google/uuid"
)

// Broadcast is a customer-initiated stay request pushed to every owner with a
// listing matching its location. Its only lifecycle transition is
// open -> accepted, claimed by exactly one owner; the persistence layer
// enforces the same rule with a conditional update so concurrent accepts
// cannot both win.
type Broadcast struct {
	id         uuid.UUID
	customerID uuid.UUID
	location   Location
	stay       StayWindow
	guests     GuestCount
	pets       bool
	phone      Phone
	status     Status
	acceptedBy *uuid.UUID
	acceptedAt *time.Time
	createdAt  time.Time
}

func NewBroadcast(
	customerID uuid.UUID,
	location Location,
	stay StayWindow,
	guests GuestCount,
	pets bool,
	phone Phone,
	now time.Time,
) *Broadcast {
	return &Broadcast{
		id:         uuid.New(),
		customerID: customerID,
		location:   location,
		stay:       stay,
		guests:     guests,
		pets:       pets,
		phone:      phone,
		status:     StatusOpen,
		createdAt:  now,
	}
}

func (b *Broadcast) IsOpen() bool {
	return b.status == StatusOpen
}

// Accept claims the broadcast for ownerID. It mirrors the conditional update
// the repository performs; in-memory callers and tests get the same
// exactly-once semantics.
func (b *Broadcast) Accept(ownerID uuid.UUID, now time.Time) error {
	if b.status != StatusOpen {
		return ErrAlreadyAccepted
	}
	b.status = StatusAccepted
	b.acceptedBy = &ownerID
	b.acceptedAt = &now
	return nil
}

func (b *Broadcast) ID() uuid.UUID         { return b.id }
func (b *Broadcast) CustomerID() uuid.UUID { return b.customerID }
func (b *Broadcast) Location() Location    { return b.location }
func (b *Broadcast) Stay() StayWindow      { return b.stay }
func (b *Broadcast) Guests() GuestCount    { return b.guests }
func (b *Broadcast) Pets() bool            { return b.pets }
func (b *Broadcast) Phone() Phone          { return b.phone }
func (b *Broadcast) Status() Status        { return b.status }
func (b *Broadcast) AcceptedBy() *uuid.UUID {
	return b.acceptedBy
}
func (b *Broadcast) AcceptedAt() *time.Time {
	return b.acceptedAt
}
func (b *Broadcast) CreatedAt() time.Time { return b.createdAt }
