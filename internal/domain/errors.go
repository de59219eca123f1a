package domain

import "errors"

var (
	// ErrInvalidInput marks malformed valuation input (e.g. non-positive square footage).
	ErrInvalidInput = errors.New("invalid input")

	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("forbidden")
)
