// Package reviews runs the daily review-counter job: once per 24-hour
// window, each store's fake review counter grows by a bounded random step.
// Idempotence per window rests on the LastBumpAt timestamp comparison, not
// on a lock; per-store failures are logged and skipped.
package reviews
