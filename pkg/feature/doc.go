// Package feature defines the canonical catalog of togglable storefront
// capabilities and the boundary validation that keeps plan feature maps
// consistent with it.
//
// The catalog is a closed set: plan editors render one toggle per catalog
// entry, and any key outside the catalog is either stripped (Sanitize) or
// rejected (Validate) before it reaches business logic. This prevents stale
// or mistyped keys from accumulating in stored plan documents.
//
// Absence semantics: a plan's feature map only carries keys it explicitly
// sets. A key missing from the map means the plan is not entitled to that
// capability; the entitlement resolver defaults it to false at read time.
package feature
