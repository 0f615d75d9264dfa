package settings

import "context"

// Store persists per-store display settings.
type Store interface {
	// Get retrieves settings by store ID. Returns ErrSettingsNotFound if
	// the store never saved any.
	Get(ctx context.Context, storeID string) (StoreSettings, error)

	// Save creates or replaces the settings document (upsert by store ID).
	Save(ctx context.Context, s StoreSettings) error

	// List returns settings for all stores. Used by the review incrementer.
	List(ctx context.Context) ([]StoreSettings, error)
}
