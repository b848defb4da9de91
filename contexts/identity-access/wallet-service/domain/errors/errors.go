package errors

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrSessionNotFound = errors.New("wallet session not found")
	ErrConnectFailed   = errors.New("failed to connect wallet")
)
