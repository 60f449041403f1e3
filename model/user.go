package model

import "time"

// UserEntity represents a row of the users table. It is created and mutated
// only by the user repository.
type UserEntity struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	Phone      string    `db:"phone" json:"phone"`
	Occupation string    `db:"occupation" json:"occupation"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// UserRequest is the inbound payload for create and full-replace update.
// The target id for update comes from the path, never from the body.
type UserRequest struct {
	Name       string `json:"name" validate:"notblank"`
	Email      string `json:"email" validate:"notblank"`
	Phone      string `json:"phone"`
	Occupation string `json:"occupation"`
}

// UserView is the outward representation of a user. UpdatedAt is internal
// bookkeeping and is never exposed.
type UserView struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Occupation string    `json:"occupation"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewUserView projects an entity into its outward view, dropping UpdatedAt.
func NewUserView(e *UserEntity) *UserView {
	return &UserView{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Occupation: e.Occupation,
		CreatedAt:  e.CreatedAt,
	}
}
