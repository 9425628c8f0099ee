package readstore

import (
	"context"

	"zenithstays/internal/infra"
	"zenithstays/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ListingReadStore struct {
	db *pgxpool.Pool
}

func NewListingReadStore(db *pgxpool.Pool) *ListingReadStore {
	return &ListingReadStore{db: db}
}

const selectOwnersByLocation = `
SELECT DISTINCT u.id, u.username, u.phone
FROM properties p
JOIN users u ON u.id = p.owner_id
WHERE p.location ILIKE '%' || $1 || '%'`

func (r *ListingReadStore) FindOwnersByLocation(ctx context.Context, location string) ([]commands.OwnerContact, error) {
	rows, err := r.db.Query(ctx, selectOwnersByLocation, location)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query owners by location", err)
	}
	defer rows.Close()

	owners := []commands.OwnerContact{}
	for rows.Next() {
		var owner commands.OwnerContact
		if err := rows.Scan(&owner.ID, &owner.Username, &owner.Phone); err != nil {
			return nil, infra.WrapRepoErr("failed to scan owner row", err)
		}
		owners = append(owners, owner)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate owner rows", err)
	}
	return owners, nil
}

const selectOwnerLocations = `
SELECT DISTINCT location
FROM properties
WHERE owner_id = $1`

func (r *ListingReadStore) DistinctLocationsByOwner(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, selectOwnerLocations, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query owner locations", err)
	}
	defer rows.Close()

	locations := []string{}
	for rows.Next() {
		var loc string
		if err := rows.Scan(&loc); err != nil {
			return nil, infra.WrapRepoErr("failed to scan location row", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate location rows", err)
	}
	return locations, nil
}
