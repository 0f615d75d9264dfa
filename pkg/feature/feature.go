package feature

import (
	"errors"
	"fmt"
	"maps"
)

// Key identifies a togglable storefront capability.
type Key string

// Canonical capability keys. The admin plan editor renders one toggle per key.
const (
	BundleAnalytics Key = "bundleAnalytics"
	StickyButton    Key = "stickyButton"
	CountdownTimer  Key = "countdownTimer"
	FreeShippingBar Key = "freeShippingBar"
	ReviewCounter   Key = "reviewCounter"
	CustomThemes    Key = "customThemes"
	PrioritySupport Key = "prioritySupport"
)

// Feature pairs a capability key with its admin-facing label.
type Feature struct {
	Key   Key    `json:"key" bson:"key"`
	Label string `json:"label" bson:"label"`
}

// Catalog is the canonical, ordered list of features a plan may toggle.
// It is the superset of keys any plan feature map is allowed to use;
// a key absent from a plan's map means the plan is not entitled to it.
type Catalog []Feature

// Default returns the built-in feature catalog.
func Default() Catalog {
	return Catalog{
		{Key: BundleAnalytics, Label: "Bundle analytics"},
		{Key: StickyButton, Label: "Sticky buy button"},
		{Key: CountdownTimer, Label: "Countdown timer"},
		{Key: FreeShippingBar, Label: "Free shipping bar"},
		{Key: ReviewCounter, Label: "Review counter"},
		{Key: CustomThemes, Label: "Custom bundle themes"},
		{Key: PrioritySupport, Label: "Priority support"},
	}
}

// Has reports whether the catalog contains the given key.
func (c Catalog) Has(k Key) bool {
	for _, f := range c {
		if f.Key == k {
			return true
		}
	}
	return false
}

// Keys returns the catalog keys in catalog order.
func (c Catalog) Keys() []Key {
	keys := make([]Key, 0, len(c))
	for _, f := range c {
		keys = append(keys, f.Key)
	}
	return keys
}

// Sanitize returns a copy of m with keys unknown to the catalog removed.
// Missing keys are not injected: absence already means not entitled, so
// storing explicit false values for every key would be redundant.
func (c Catalog) Sanitize(m map[Key]bool) map[Key]bool {
	if m == nil {
		return nil
	}
	out := maps.Clone(m)
	for k := range out {
		if !c.Has(k) {
			delete(out, k)
		}
	}
	return out
}

// Validate reports an error for every key in m the catalog does not know.
// Used at API boundaries where a stale or mistyped key should be rejected
// loudly instead of silently stripped.
func (c Catalog) Validate(m map[Key]bool) error {
	var errs []error
	for k := range m {
		if !c.Has(k) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownFeature, k))
		}
	}
	return errors.Join(errs...)
}
