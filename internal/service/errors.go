package service

import "errors"

var (
	ErrValidationFailed = errors.New("validation failed")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrUnauthorized = errors.New("caller is not authenticated")
	ErrForbidden    = errors.New("caller lacks the required scope")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
