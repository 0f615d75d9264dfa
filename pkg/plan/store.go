package plan

import "context"

// Source loads the plan catalog snapshot. Consumers re-load per resolution
// so a mutated catalog never retroactively changes an earlier snapshot.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}

// Store persists the plan catalog.
type Store interface {
	Source

	// Get retrieves a plan by key. Returns ErrPlanNotFound if absent.
	Get(ctx context.Context, key string) (Plan, error)

	// Insert adds a new plan. Returns ErrDuplicateKey if the key exists.
	Insert(ctx context.Context, p Plan) error

	// Update replaces the stored document if its version still matches
	// p.Version, then advances the version. Returns ErrConflict when the
	// document changed underneath the caller, ErrPlanNotFound if absent.
	Update(ctx context.Context, p Plan) error

	// Delete removes a plan by key. Returns ErrPlanNotFound if absent.
	Delete(ctx context.Context, key string) error
}
