package entitlement

import "context"

// Store persists store entitlement records keyed by store ID.
type Store interface {
	// Get retrieves a record by store ID. Returns ErrStoreNotFound if absent.
	Get(ctx context.Context, storeID string) (StoreRecord, error)

	// Insert adds a new record. Returns ErrStoreExists on a duplicate ID.
	Insert(ctx context.Context, rec StoreRecord) error

	// Update replaces the stored document if its version still matches
	// rec.Version, then advances the version. Returns ErrConflict when the
	// document changed underneath the caller, ErrStoreNotFound if absent.
	Update(ctx context.Context, rec StoreRecord) error

	// CountByPlan returns how many records reference the given plan key.
	CountByPlan(ctx context.Context, planKey string) (int64, error)
}
