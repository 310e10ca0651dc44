package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/notes-api/internal/entity"
	"github.com/evgeniy-krivenko/notes-api/internal/repository/converter"
	"github.com/evgeniy-krivenko/notes-api/pkg/logger/slogx"
)

const (
	listUsersQuery  = `SELECT * FROM users ORDER BY id LIMIT $1 OFFSET $2`
	createUserQuery = `INSERT INTO users (name, display_name, email) VALUES ($1, $2, $3) RETURNING *`
)

func (r *Repo) ListUsers(ctx context.Context, limit, offset int) ([]entity.User, error) {
	rows, err := r.db.Query(ctx, listUsersQuery, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.UserRow])
	if err != nil {
		return nil, fmt.Errorf("collect users: %w", err)
	}

	return converter.ConvertUsersToEntity(users), nil
}

func (r *Repo) CreateUser(ctx context.Context, in entity.CreateUser) (entity.User, error) {
	rows, err := r.db.Query(ctx, createUserQuery,
		converter.ConvertStringToText(in.Name),
		converter.ConvertStringToText(in.DisplayName),
		converter.ConvertStringToText(in.Email),
	)
	if err != nil {
		return entity.User{}, classify("users", fmt.Errorf("create user: %w", err))
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.UserRow])
	if err != nil {
		return entity.User{}, classify("users", fmt.Errorf("create user: %w", err))
	}

	slogx.Debug(ctx, "success to create user", slogx.Op("repository.CreateUser"))

	return converter.ConvertUserToEntity(row), nil
}
