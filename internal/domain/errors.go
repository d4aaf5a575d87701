package domain

import "github.com/go-faster/errors"

var (
	// ErrFetch means the catalog source was unreachable or returned a malformed payload.
	ErrFetch = errors.New("catalog fetch failed")

	// ErrUnknownProduct means the product identifier is not part of the loaded catalog.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrInvalidState means the requested transition does not apply to the current state,
	// e.g. incrementing a product that is not in the cart.
	ErrInvalidState = errors.New("invalid state")

	// ErrEmptyCart means an order was confirmed with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")

	ErrInvalidPrice = errors.New("invalid price")
)
