package entitlement

import (
	"fmt"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/feature"
	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/plan"
)

// Entitlement is the effective limit and feature set a store resolves to.
// It is a materialized value copy: mutating the catalog afterwards does not
// reach an already-resolved Entitlement.
type Entitlement struct {
	Limits           plan.Limits          `json:"limits"`
	Features         map[feature.Key]bool `json:"features"`
	AnalyticsEnabled bool                 `json:"analytics_enabled"`
}

// Resolver computes effective entitlements against a catalog snapshot.
type Resolver struct {
	features feature.Catalog
}

// NewResolver returns a resolver that defaults feature maps against the
// given catalog. A nil catalog defaults to feature.Default().
func NewResolver(features feature.Catalog) Resolver {
	if features == nil {
		features = feature.Default()
	}
	return Resolver{features: features}
}

// Resolve computes the effective entitlement for a store record.
//
// A plan key absent from the catalog is a data-integrity violation and is
// surfaced as ErrPlanNotFound; silently substituting a default plan would
// mask a billing-relevant bug.
//
// Override mode swaps in the record's own numeric limits. It never touches
// the feature set: features always come from the assigned plan. That
// asymmetry is deliberate — overrides exist to hand a store extra capacity,
// not extra capabilities. AnalyticsEnabled is store-owned in both modes.
func (r Resolver) Resolve(rec StoreRecord, catalog plan.Catalog) (Entitlement, error) {
	p, ok := catalog[rec.Plan]
	if !ok {
		return Entitlement{}, fmt.Errorf("%w: store %s references %q", ErrPlanNotFound, rec.StoreID, rec.Plan)
	}

	feats := make(map[feature.Key]bool, len(r.features))
	for _, f := range r.features {
		feats[f.Key] = p.Features[f.Key]
	}

	ent := Entitlement{
		Features:         feats,
		AnalyticsEnabled: rec.BundleSettings.AnalyticsEnabled,
	}

	if rec.OverrideEnabled {
		ent.Limits = plan.Limits{
			plan.ResourceBundles:      plan.CloneLimit(rec.BundleSettings.MaxBundlesPerStore),
			plan.ResourceMonthlyViews: plan.CloneLimit(rec.BundleSettings.MaxMonthlyViews),
		}
	} else {
		ent.Limits = p.Limits.Clone()
	}

	return ent, nil
}

// SyncOnPlanChange returns a copy of rec assigned to newKey.
//
// With override disabled the bundle settings limit fields are re-mirrored
// from the new plan, nil included; AnalyticsEnabled is left untouched. With
// override enabled no settings field changes: switching tiers in override
// mode only affects future auto-sync behavior, not current limits.
func SyncOnPlanChange(rec StoreRecord, newKey string, catalog plan.Catalog) (StoreRecord, error) {
	p, ok := catalog[newKey]
	if !ok {
		return StoreRecord{}, fmt.Errorf("%w: %q", ErrPlanNotFound, newKey)
	}

	out := rec.Clone()
	out.Plan = newKey
	if !rec.OverrideEnabled {
		out.BundleSettings.MaxBundlesPerStore = plan.CloneLimit(p.Limits[plan.ResourceBundles])
		out.BundleSettings.MaxMonthlyViews = plan.CloneLimit(p.Limits[plan.ResourceMonthlyViews])
	}
	return out, nil
}
