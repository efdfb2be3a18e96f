package models

import "errors"

// Not-found conditions surfaced by the repositories. Reported to the caller
// without any state change.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)
