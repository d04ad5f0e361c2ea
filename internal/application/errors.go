package application

import (
	"errors"
)

// Application error types
var (
	ErrNotInitialized = errors.New("application is not initialized")
)
