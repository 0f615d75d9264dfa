package settings

import "errors"

var (
	// ErrSettingsNotFound indicates the store has no saved settings yet;
	// callers typically fall back to Defaults.
	ErrSettingsNotFound = errors.New("store settings not found")
)
