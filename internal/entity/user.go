package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID  `json:"id"`
	Name        *string    `json:"name"`
	DisplayName *string    `json:"display_name"`
	Email       *string    `json:"email"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

type CreateUser struct {
	Name        *string
	DisplayName *string
	Email       *string
}
