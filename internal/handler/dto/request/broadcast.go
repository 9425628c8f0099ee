package request

import (
	"strings"
	"time"

	"zenithstays/internal/domain/broadcast"

	"github.com/google/uuid"
)

type CreateBroadcastRequest struct {
	Location     string    `json:"location" binding:"required"`
	CheckInDate  time.Time `json:"checkInDate" binding:"required"`
	CheckOutDate time.Time `json:"checkOutDate" binding:"required"`
	Guests       int       `json:"guests" binding:"required"`
	Pets         bool      `json:"pets"`
	Phone        *string   `json:"phone,omitempty"`
}

// GetPhone returns the trimmed phone from the request body, or nil when the
// caller wants the profile fallback.
func (r CreateBroadcastRequest) GetPhone() *string {
	if r.Phone == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Phone)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ToDomain builds the entity; phone is the already-resolved contact number
// (request value or profile fallback).
func (r CreateBroadcastRequest) ToDomain(customerID uuid.UUID, phone string, now time.Time) (*broadcast.Broadcast, error) {
	location, err := broadcast.NewLocation(r.Location)
	if err != nil {
		return nil, err
	}

	stay, err := broadcast.NewStayWindow(r.CheckInDate, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	guests, err := broadcast.NewGuestCount(r.Guests)
	if err != nil {
		return nil, err
	}

	phoneVO, err := broadcast.NewPhone(phone)
	if err != nil {
		return nil, err
	}

	return broadcast.NewBroadcast(customerID, location, stay, guests, r.Pets, phoneVO, now), nil
}
