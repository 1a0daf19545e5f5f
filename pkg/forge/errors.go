package forge

import "errors"

// Forge-specific errors.
var (
	ErrRateLimited  = errors.New("rate limited by forge API")
	ErrUnauthorized = errors.New("unauthorized access to forge API")
)
