package service

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAddressNotFound     = errors.New("address not found")
	ErrEmailTaken          = errors.New("the email has already been taken")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailMismatch       = errors.New("the email provided does not match the email of the authenticated user")
	ErrOldPasswordMismatch = errors.New("the old password does not match")
	ErrUnknownRole         = errors.New("one or more roles do not exist")
	ErrConflict            = errors.New("the record was updated since reading")
)
