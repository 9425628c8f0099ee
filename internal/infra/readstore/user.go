package readstore

import (
	"context"
	"errors"

	"zenithstays/internal/infra"
	"zenithstays/internal/usecase/commands"
	"zenithstays/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

const selectUserByID = `
SELECT id, username, email, role, phone, COALESCE(avatar, ''), is_active
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var view queries.UserView
	err := r.db.QueryRow(ctx, selectUserByID, id).Scan(
		&view.ID,
		&view.Username,
		&view.Email,
		&view.Role,
		&view.Phone,
		&view.Avatar,
		&view.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &view, nil
}

const selectUserByEmail = `
SELECT id, username, email, role, phone, COALESCE(avatar, ''), is_active, password_hash
FROM users
WHERE email = $1`

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	var (
		view queries.UserView
		hash string
	)
	err := r.db.QueryRow(ctx, selectUserByEmail, email).Scan(
		&view.ID,
		&view.Username,
		&view.Email,
		&view.Role,
		&view.Phone,
		&view.Avatar,
		&view.IsActive,
		&hash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

// UserSnapshots adapts the user table to the command-side read port.
type UserSnapshots struct {
	db *pgxpool.Pool
}

func NewUserSnapshots(db *pgxpool.Pool) *UserSnapshots {
	return &UserSnapshots{db: db}
}

const selectUserSnapshot = `
SELECT id, username, email, role, phone, is_active
FROM users
WHERE id = $1`

func (r *UserSnapshots) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserSnapshot, error) {
	var snap commands.UserSnapshot
	err := r.db.QueryRow(ctx, selectUserSnapshot, id).Scan(
		&snap.ID,
		&snap.Username,
		&snap.Email,
		&snap.Role,
		&snap.Phone,
		&snap.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user snapshot", err)
	}
	return &snap, nil
}
