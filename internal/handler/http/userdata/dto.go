// Package userdata exposes the user-data CRUD endpoints.
package userdata

import (
	"time"

	"datapulse/internal/domain/entity"
)

type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDTO(e *entity.UserData) DTO {
	return DTO{
		ID:        e.ID,
		Name:      e.Name,
		Value:     e.Value,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
