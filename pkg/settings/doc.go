// Package settings persists per-store storefront widget configuration:
// the countdown timer, the free-shipping bar, and the review counter.
// It is intentionally pass-through: no business rules live here beyond
// upsert semantics and start-up defaults. The review incrementer job in
// pkg/reviews consumes this package's Store.
package settings
