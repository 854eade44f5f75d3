package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCardNotFound       = errors.New("card not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password is too weak")
	ErrTokenInvalid       = errors.New("token is invalid or expired")
	ErrNotCardOwner       = errors.New("card belongs to another user")
	ErrInvalidID          = errors.New("invalid id")
)
