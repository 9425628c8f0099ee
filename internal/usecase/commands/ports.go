package commands

import (
	"context"
	"time"

	"zenithstays/internal/domain/broadcast"

	"github.com/google/uuid"
)

type BroadcastRepository interface {
	Create(ctx context.Context, b *broadcast.Broadcast) error
	// AcceptIfOpen performs the single conditional write that arbitrates the
	// accept race: UPDATE ... WHERE id = $1 AND status = 'open'. The error
	// kind distinguishes a missing broadcast from one already claimed.
	AcceptIfOpen(ctx context.Context, id, ownerID uuid.UUID, acceptedAt time.Time) error
}

// OwnerContact is one deduplicated owner with a listing matching a broadcast
// location. Phone is nil when the owner has none on file; such owners still
// get the live push but are skipped by the SMS side channel.
type OwnerContact struct {
	ID       uuid.UUID
	Username string
	Phone    *string
}

// OwnerDirectory resolves a free-text location to the owners whose listings
// it matches, with the same case-insensitive substring rule the public
// search uses.
type OwnerDirectory interface {
	FindOwnersByLocation(ctx context.Context, location string) ([]OwnerContact, error)
}

type UserSnapshot struct {
	ID       uuid.UUID
	Username string
	Email    string
	Role     string
	Phone    *string
	IsActive bool
}

type UserReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, username, email, passwordHash, role string, phone *string) (uuid.UUID, error)
}

// EventEmitter is the live-push port; the realtime registry satisfies it.
type EventEmitter interface {
	Emit(userID uuid.UUID, event string, payload any)
}
