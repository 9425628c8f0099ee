package repository

import (
	"context"
	"errors"
	"time"

	"zenithstays/internal/domain/broadcast"
	"zenithstays/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BroadcastRepository struct {
	db *pgxpool.Pool
}

func NewBroadcastRepository(db *pgxpool.Pool) *BroadcastRepository {
	return &BroadcastRepository{db: db}
}

const insertBroadcast = `
INSERT INTO broadcasts (id, customer_id, location, check_in_date, check_out_date, guests, pets, phone, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (r *BroadcastRepository) Create(ctx context.Context, b *broadcast.Broadcast) error {
	_, err := r.db.Exec(ctx, insertBroadcast,
		b.ID(),
		b.CustomerID(),
		b.Location().Value(),
		b.Stay().CheckIn(),
		b.Stay().CheckOut(),
		b.Guests().Value(),
		b.Pets(),
		b.Phone().Value(),
		b.Status().String(),
		b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create broadcast", err)
	}
	return nil
}

const acceptBroadcastIfOpen = `
UPDATE broadcasts
SET status = 'accepted', accepted_by = $2, accepted_at = $3
WHERE id = $1 AND status = 'open'`

// AcceptIfOpen is the compare-and-swap on the lifecycle status. With
// concurrent accepts the database serializes the row update, so exactly one
// caller flips open -> accepted; everyone else matches zero rows and gets a
// CONFLICT (or NOT_FOUND when the id never existed).
func (r *BroadcastRepository) AcceptIfOpen(ctx context.Context, id, ownerID uuid.UUID, acceptedAt time.Time) error {
	tag, err := r.db.Exec(ctx, acceptBroadcastIfOpen, id, ownerID, acceptedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to accept broadcast", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Zero rows: either the broadcast is gone or someone else won the race.
	var status string
	err = r.db.QueryRow(ctx, `SELECT status FROM broadcasts WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("broadcast not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to inspect broadcast status", err)
	}
	return infra.WrapRepoErr("broadcast is not open", nil, infra.KindConflict)
}
