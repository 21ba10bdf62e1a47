package domain

import "errors"

var (
	// ErrInvalidInput is returned when a create or update request is missing
	// required fields
	ErrInvalidInput = errors.New("invalid input")

	// ErrProductNotFound is returned when the target product does not exist
	// in the local store (remote products are never mutable targets)
	ErrProductNotFound = errors.New("product not found")

	// ErrUpstreamUnavailable is returned when the remote catalog request fails
	ErrUpstreamUnavailable = errors.New("upstream catalog unavailable")
)
