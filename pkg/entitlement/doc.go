// Package entitlement resolves the effective resource limits and feature
// set a store is entitled to, given its entitlement record and the current
// plan catalog snapshot.
//
// Resolution rules:
//
//   - A record referencing a plan key absent from the catalog fails with
//     ErrPlanNotFound. The dangling reference is billing-relevant and is
//     never silently defaulted away.
//   - With override disabled, effective limits are a value copy of the
//     plan's limits and the feature map is the plan's, with every catalog
//     key defaulted to false when absent.
//   - With override enabled, effective limits come from the record's own
//     bundle settings. Features still come from the plan: override grants
//     capacity, never capabilities.
//   - The analytics toggle is store-owned in both modes.
//   - nil limits mean unlimited and propagate as nil.
//
// The pure functions (Resolver.Resolve, SyncOnPlanChange) carry the whole
// contract; Service layers persistence and catalog loading on top and adds
// optimistic version checks on every write.
package entitlement
