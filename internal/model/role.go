package model

import "time"

const (
	RoleAdmin  = "Admin"
	RoleEditor = "Editor"
	RoleViewer = "Viewer"
)

// Role is a named permission bucket
type Role struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleIDsRequest is the body of assign-role and revoke-role
type RoleIDsRequest struct {
	Roles []int64 `json:"roles" binding:"required,dive,gt=0"`
}
