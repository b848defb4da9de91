package errors

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrNotAnImage       = errors.New("upload must be an image")
	ErrFileTooLarge     = errors.New("upload exceeds the 5MB limit")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrRegistrationFail = errors.New("failed to register upload")
)
