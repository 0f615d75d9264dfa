package feature

import "errors"

// Predefined errors for the feature package.
var (
	// ErrUnknownFeature indicates a feature key absent from the catalog.
	ErrUnknownFeature = errors.New("unknown feature key")
)
