// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password too weak")
	ErrInactiveUser       = errors.New("inactive user")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidResetToken  = errors.New("invalid reset token")

	// Authorization errors
	ErrPermissionDenied = errors.New("not enough permissions")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")

	// Vehicle-related errors
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrDuplicateVIN    = errors.New("vehicle vin already exists")

	// Contact-related errors
	ErrContactNotFound = errors.New("contact not found")
)
