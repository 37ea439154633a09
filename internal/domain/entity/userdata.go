// Package entity defines the domain model shared across use cases and
// persistence.
package entity

import "time"

// UserData is one stored user-data item.
type UserData struct {
	ID        int64
	Name      string
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the entity's required fields.
func (u *UserData) Validate() error {
	if u.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if len(u.Name) > 255 {
		return &ValidationError{Field: "name", Message: "must be at most 255 characters"}
	}
	return nil
}
