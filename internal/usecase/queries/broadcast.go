package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BroadcastView struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	Location     string     `json:"location"`
	CheckInDate  time.Time  `json:"check_in_date"`
	CheckOutDate time.Time  `json:"check_out_date"`
	Guests       int32      `json:"guests"`
	Pets         bool       `json:"pets"`
	Phone        string     `json:"phone"`
	Status       string     `json:"status"`
	AcceptedBy   *uuid.UUID `json:"accepted_by,omitempty"`
	AcceptedAt   *time.Time `json:"accepted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type BroadcastReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BroadcastView, error)
	// FindOpenByLocations returns open broadcasts whose free-text location
	// matches any of the given listing locations (case-insensitive
	// substring, same rule as the owner fan-out), newest first.
	FindOpenByLocations(ctx context.Context, locations []string) ([]*BroadcastView, error)
}

type ListingReadStore interface {
	// DistinctLocationsByOwner returns the distinct location strings of the
	// owner's listings.
	DistinctLocationsByOwner(ctx context.Context, ownerID uuid.UUID) ([]string, error)
}

type BroadcastQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BroadcastView, error)
	// ListOpenForOwner is the reconciliation path an owner dashboard hits on
	// load or reconnect; it returns the same set a live push would have
	// delivered, modulo timing.
	ListOpenForOwner(ctx context.Context, ownerID uuid.UUID) ([]*BroadcastView, error)
}

type broadcastQueriesImpl struct {
	broadcasts BroadcastReadStore
	listings   ListingReadStore
}

func NewBroadcastQueries(broadcasts BroadcastReadStore, listings ListingReadStore) BroadcastQueries {
	return &broadcastQueriesImpl{
		broadcasts: broadcasts,
		listings:   listings,
	}
}

func (q *broadcastQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BroadcastView, error) {
	return q.broadcasts.FindByID(ctx, id)
}

func (q *broadcastQueriesImpl) ListOpenForOwner(ctx context.Context, ownerID uuid.UUID) ([]*BroadcastView, error) {
	locations, err := q.listings.DistinctLocationsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return []*BroadcastView{}, nil
	}
	return q.broadcasts.FindOpenByLocations(ctx, locations)
}
