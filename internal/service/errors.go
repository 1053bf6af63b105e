package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every input validation failure. The
	// concrete reason is joined from the validators package.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidID           = errors.New("invalid id")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrStatusTransitionNotAllowed = errors.New("status transition is not allowed")
	ErrInvalidNotification        = errors.New("invalid notification")
	ErrNoRelatedEntity            = errors.New("notification has no related entity")
	ErrPriceOutOfRange            = errors.New("quote price is out of range")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStorageUnavailable    = errors.New("storage is unavailable")
)
