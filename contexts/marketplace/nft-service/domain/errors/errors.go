package errors

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrUnauthenticated     = errors.New("wallet not connected")
	ErrTokenNotFound       = errors.New("nft not found")
	ErrNotOwner            = errors.New("caller does not own this nft")
	ErrTokenAlreadyExists  = errors.New("token id already exists")
	ErrMintFailed          = errors.New("failed to mint nft")
	ErrListingFailed       = errors.New("failed to list nft for sale")
	ErrPurchaseFailed      = errors.New("failed to purchase nft")
	ErrIdempotencyConflict = errors.New("idempotency key conflict")
)
