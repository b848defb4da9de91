package errors

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidEntry   = errors.New("invalid activity entry")
)
