package services

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrMessageRequired    = errors.New("message required")
)
