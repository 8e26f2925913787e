package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrFieldTooLong        = errors.New("field exceeds maximum length")
	ErrInvalidDate         = errors.New("invalid date format")
	ErrDateOutOfRange      = errors.New("date out of allowed range")

	// ErrInvalidCredentials masks whether the email or the password was
	// wrong during login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
