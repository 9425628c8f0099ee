package readstore

import (
	"context"
	"errors"

	"zenithstays/internal/infra"
	"zenithstays/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BroadcastReadStore struct {
	db *pgxpool.Pool
}

func NewBroadcastReadStore(db *pgxpool.Pool) *BroadcastReadStore {
	return &BroadcastReadStore{db: db}
}

const selectBroadcastByID = `
SELECT b.id, b.customer_id, u.username, b.location, b.check_in_date, b.check_out_date,
       b.guests, b.pets, b.phone, b.status, b.accepted_by, b.accepted_at, b.created_at
FROM broadcasts b
JOIN users u ON u.id = b.customer_id
WHERE b.id = $1`

func (r *BroadcastReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BroadcastView, error) {
	row := r.db.QueryRow(ctx, selectBroadcastByID, id)
	view, err := scanBroadcastView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("broadcast not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find broadcast by id", err)
	}
	return view, nil
}

// The match rule mirrors the submit fan-out, with the roles swapped: fan-out
// finds listings whose location contains the searched location, so the feed
// keeps a broadcast when one of the owner's listing locations contains the
// broadcast location. A listing in "Lapland, Finland" surfaces a broadcast
// for "Lapland". Using the same rule on both paths keeps the dashboard
// reconciliation set identical to what live push delivered.
const selectOpenBroadcastsByLocations = `
SELECT b.id, b.customer_id, u.username, b.location, b.check_in_date, b.check_out_date,
       b.guests, b.pets, b.phone, b.status, b.accepted_by, b.accepted_at, b.created_at
FROM broadcasts b
JOIN users u ON u.id = b.customer_id
WHERE b.status = 'open'
  AND EXISTS (
    SELECT 1 FROM unnest($1::text[]) AS loc
    WHERE loc ILIKE '%' || b.location || '%'
  )
ORDER BY b.created_at DESC`

func (r *BroadcastReadStore) FindOpenByLocations(ctx context.Context, locations []string) ([]*queries.BroadcastView, error) {
	rows, err := r.db.Query(ctx, selectOpenBroadcastsByLocations, locations)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query open broadcasts", err)
	}
	defer rows.Close()

	views := []*queries.BroadcastView{}
	for rows.Next() {
		view, scanErr := scanBroadcastView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan broadcast row", scanErr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate broadcast rows", err)
	}
	return views, nil
}

func scanBroadcastView(row pgx.Row) (*queries.BroadcastView, error) {
	var view queries.BroadcastView
	err := row.Scan(
		&view.ID,
		&view.CustomerID,
		&view.CustomerName,
		&view.Location,
		&view.CheckInDate,
		&view.CheckOutDate,
		&view.Guests,
		&view.Pets,
		&view.Phone,
		&view.Status,
		&view.AcceptedBy,
		&view.AcceptedAt,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
