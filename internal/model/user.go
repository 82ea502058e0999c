package model

import "time"

// User represents a user in the system
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Phone        *string   `json:"phone"`
	NationalID   *string   `json:"national_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateUserRequest is the body accepted by POST /users
type CreateUserRequest struct {
	Name       string  `json:"name" binding:"required,max=255"`
	Email      string  `json:"email" binding:"required,email,max=255"`
	Password   string  `json:"password" binding:"required,min=6"`
	Phone      *string `json:"phone" binding:"omitempty,max=20"`
	NationalID *string `json:"national_id" binding:"omitempty,max=20"`
}

// UpdateUserRequest carries a partial update; nil fields are left untouched.
// Phone and NationalID can be cleared with an explicit null.
type UpdateUserRequest struct {
	Name       *string        `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Email      *string        `json:"email,omitempty" binding:"omitempty,email,max=255"`
	Phone      OptionalString `json:"phone" binding:"omitempty,max=20"`
	NationalID OptionalString `json:"national_id" binding:"omitempty,max=20"`
}

// LoginRequest is the body accepted by POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ChangePasswordRequest is the body accepted by POST /auth/change-password
type ChangePasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OldPassword string `json:"old_password" binding:"required,min=6"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
