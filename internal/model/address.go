package model

import "time"

// Address is a postal address owned by exactly one user
type Address struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Neighborhood string    `json:"neighborhood"`
	Complement   *string   `json:"complement"`
	PostalCode   string    `json:"postal_code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateAddressRequest struct {
	Street       string  `json:"street" binding:"required,max=255"`
	Number       string  `json:"number" binding:"required,max=20"`
	Neighborhood string  `json:"neighborhood" binding:"required,max=255"`
	Complement   *string `json:"complement" binding:"omitempty,max=255"`
	PostalCode   string  `json:"postal_code" binding:"required,max=20"`
}

// UpdateAddressRequest carries a partial update; nil fields are left untouched.
// Complement can be cleared with an explicit null.
type UpdateAddressRequest struct {
	Street       *string        `json:"street,omitempty" binding:"omitempty,min=1,max=255"`
	Number       *string        `json:"number,omitempty" binding:"omitempty,min=1,max=20"`
	Neighborhood *string        `json:"neighborhood,omitempty" binding:"omitempty,min=1,max=255"`
	Complement   OptionalString `json:"complement" binding:"omitempty,max=255"`
	PostalCode   *string        `json:"postal_code,omitempty" binding:"omitempty,min=1,max=20"`
}
