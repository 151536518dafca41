package domain

import "errors"

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrSpotNotFound         = errors.New("spot not found")
	ErrFacilityNotFound     = errors.New("facility not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

var (
	ErrSpotUnavailable   = errors.New("spot is not available")
	ErrInvalidTransition = errors.New("operation not allowed in the booking's current status")
	ErrUnauthorized      = errors.New("caller is not allowed to perform this action")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrValidation = errors.New("validation error")
)
