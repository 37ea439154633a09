// Package repository declares the persistence interfaces consumed by
// the use case layer.
package repository

import (
	"context"

	"datapulse/internal/domain/entity"
)

// UserDataRepository persists user-data items.
type UserDataRepository interface {
	// Create stores a new item and fills in its generated ID and timestamps.
	Create(ctx context.Context, data *entity.UserData) error
	// List retrieves items ordered by ID, skipping offset rows and
	// returning at most limit rows.
	List(ctx context.Context, offset, limit int) ([]*entity.UserData, error)
	// Get retrieves one item by ID. Returns entity.ErrNotFound if absent.
	Get(ctx context.Context, id int64) (*entity.UserData, error)
	// Update overwrites name and value of an existing item and returns
	// the updated row. Returns entity.ErrNotFound if absent.
	Update(ctx context.Context, data *entity.UserData) error
	// Delete removes an item by ID and reports the deleted row.
	// Returns entity.ErrNotFound if absent.
	Delete(ctx context.Context, id int64) (*entity.UserData, error)
}
