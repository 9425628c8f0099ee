package broadcast

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyLocation   = errors.New("location is required")
	ErrInvalidStay     = errors.New("check-in must be before check-out")
	ErrMissingDates    = errors.New("check-in and check-out dates are required")
	ErrInvalidGuests   = errors.New("guest count must be at least 1")
	ErrMissingPhone    = errors.New("phone number is required")
	ErrAlreadyAccepted = errors.New("broadcast already accepted")
)

// Location is the free-text search string as the customer typed it. It is
// matched as a case-insensitive substring against listing locations, never
// normalized beyond trimming.
type Location struct {
	value string
}

func NewLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Location{}, ErrEmptyLocation
	}
	return Location{value: s}, nil
}

func (l Location) Value() string {
	return l.value
}

type StayWindow struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayWindow(checkIn, checkOut time.Time) (StayWindow, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return StayWindow{}, ErrMissingDates
	}
	if !checkIn.Before(checkOut) {
		return StayWindow{}, ErrInvalidStay
	}
	return StayWindow{checkIn: checkIn, checkOut: checkOut}, nil
}

func (w StayWindow) CheckIn() time.Time {
	return w.checkIn
}

func (w StayWindow) CheckOut() time.Time {
	return w.checkOut
}

func (w StayWindow) Nights() int {
	return int(w.checkOut.Sub(w.checkIn).Hours() / 24)
}

type GuestCount struct {
	value int
}

func NewGuestCount(n int) (GuestCount, error) {
	if n < 1 {
		return GuestCount{}, ErrInvalidGuests
	}
	return GuestCount{value: n}, nil
}

func (g GuestCount) Value() int {
	return g.value
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Phone{}, ErrMissingPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}
