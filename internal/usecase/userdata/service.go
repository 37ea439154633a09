// Package userdata provides use cases for managing stored user-data
// items. It implements business logic for creating, updating, deleting,
// and listing items, including validation and interaction with the
// repository.
package userdata

import (
	"context"
	"fmt"

	"datapulse/internal/domain/entity"
	"datapulse/internal/repository"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// CreateInput represents the input parameters for creating a new item.
type CreateInput struct {
	Name  string
	Value string
}

// UpdateInput represents the input parameters for updating an existing
// item. Both fields are written as given; there is no partial update.
type UpdateInput struct {
	ID    int64
	Name  string
	Value string
}

// ListInput carries pagination parameters. A non-positive limit falls
// back to defaultListLimit and limits above maxListLimit are clamped.
type ListInput struct {
	Skip  int
	Limit int
}

// Service provides user-data management use cases.
// It handles business logic and delegates persistence to the repository.
type Service struct {
	Repo repository.UserDataRepository
}

// Create validates the input and stores a new item.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.UserData, error) {
	data := &entity.UserData{Name: in.Name, Value: in.Value}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, data); err != nil {
		return nil, fmt.Errorf("create user data: %w", err)
	}
	return data, nil
}

// List retrieves a page of items ordered by ID.
func (s *Service) List(ctx context.Context, in ListInput) ([]*entity.UserData, error) {
	if in.Skip < 0 {
		return nil, &entity.ValidationError{Field: "skip", Message: "must not be negative"}
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, err := s.Repo.List(ctx, in.Skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list user data: %w", err)
	}
	return items, nil
}

// Get retrieves one item by ID.
// Returns entity.ErrNotFound if the item does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.UserData, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user data: %w", err)
	}
	return item, nil
}

// Update overwrites an existing item with the provided input.
// Returns entity.ErrNotFound if the item does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.UserData, error) {
	if in.ID <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	data := &entity.UserData{ID: in.ID, Name: in.Name, Value: in.Value}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(ctx, data); err != nil {
		return nil, fmt.Errorf("update user data: %w", err)
	}
	return data, nil
}

// Delete removes an item by ID and returns the deleted row.
// Returns entity.ErrNotFound if the item does not exist.
func (s *Service) Delete(ctx context.Context, id int64) (*entity.UserData, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	item, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete user data: %w", err)
	}
	return item, nil
}
