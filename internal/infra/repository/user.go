package repository

import (
	"context"
	"errors"

	"zenithstays/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const insertUser = `
INSERT INTO users (id, username, email, password_hash, role, phone)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash, role string, phone *string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, insertUser, id, username, email, passwordHash, role, phone)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}
