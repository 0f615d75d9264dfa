// Package plan implements the subscription plan catalog and its
// administrator lifecycle: create, partial update, delete, and reset to
// factory baselines.
//
// A Plan carries pricing, per-resource limits, and a feature-flag map.
// Limits use nil to mean unlimited; the null travels through storage and
// transport unchanged instead of being collapsed into a sentinel integer.
//
// The catalog is consumed as an explicit Source snapshot. Stores implement
// Source plus write operations; CachedSource adds a Redis snapshot cache in
// front of any Source and exposes Invalidate for the service's on-change
// hook:
//
//	store, _ := plan.NewMongoStore(ctx, db)
//	cached := plan.NewCachedSource(store, rdb)
//	svc := plan.NewService(store, feature.Default(),
//		plan.WithInUseCheck(entitlements.PlanInUse),
//		plan.WithOnChange(func(ctx context.Context) { _ = cached.Invalidate(ctx) }),
//	)
//
// Concurrent edits are detected optimistically: every plan carries a
// version, writes filter on it, and a mismatch surfaces as ErrConflict.
package plan
