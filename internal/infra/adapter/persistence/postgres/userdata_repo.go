// Package postgres implements the repository interfaces on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"datapulse/internal/domain/entity"
	"datapulse/internal/infra/db"
	"datapulse/internal/repository"
)

type UserDataRepo struct {
	db db.Querier
}

// NewUserDataRepo builds a repository on top of any Querier, so the
// pool can be wrapped with instrumentation before it gets here.
func NewUserDataRepo(q db.Querier) repository.UserDataRepository {
	return &UserDataRepo{db: q}
}

func (repo *UserDataRepo) Create(ctx context.Context, data *entity.UserData) error {
	const query = `
INSERT INTO user_data (name, value)
VALUES ($1, $2)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query, data.Name, data.Value).
		Scan(&data.ID, &data.CreatedAt, &data.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserDataRepo) List(ctx context.Context, offset, limit int) ([]*entity.UserData, error) {
	const query = `
SELECT id, name, value, created_at, updated_at
FROM user_data
ORDER BY id
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.UserData, 0, limit)
	for rows.Next() {
		var item entity.UserData
		if err := rows.Scan(&item.ID, &item.Name, &item.Value,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (repo *UserDataRepo) Get(ctx context.Context, id int64) (*entity.UserData, error) {
	const query = `
SELECT id, name, value, created_at, updated_at
FROM user_data
WHERE id = $1`
	var item entity.UserData
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&item.ID, &item.Name, &item.Value, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &item, nil
}

func (repo *UserDataRepo) Update(ctx context.Context, data *entity.UserData) error {
	const query = `
UPDATE user_data
SET name = $2, value = $3, updated_at = now()
WHERE id = $1
RETURNING created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query, data.ID, data.Name, data.Value).
		Scan(&data.CreatedAt, &data.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *UserDataRepo) Delete(ctx context.Context, id int64) (*entity.UserData, error) {
	const query = `
DELETE FROM user_data
WHERE id = $1
RETURNING id, name, value, created_at, updated_at`
	var item entity.UserData
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&item.ID, &item.Name, &item.Value, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Delete: %w", err)
	}
	return &item, nil
}
