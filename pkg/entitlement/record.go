package entitlement

import (
	"time"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/plan"
)

// BundleSettings holds a store's numeric limit fields and analytics toggle.
//
// While OverrideEnabled is false on the owning record, the two limit fields
// mirror the assigned plan's limits; they are derived, not authoritative,
// and are rewritten on every plan change. While true, they are authoritative
// and independent of the plan. AnalyticsEnabled is always store-owned and
// never plan-derived.
type BundleSettings struct {
	MaxBundlesPerStore *int64 `json:"max_bundles_per_store" bson:"max_bundles_per_store"`
	MaxMonthlyViews    *int64 `json:"max_monthly_views" bson:"max_monthly_views"`
	AnalyticsEnabled   bool   `json:"analytics_enabled" bson:"analytics_enabled"`
}

// Clone returns a deep copy of the settings.
func (b BundleSettings) Clone() BundleSettings {
	return BundleSettings{
		MaxBundlesPerStore: plan.CloneLimit(b.MaxBundlesPerStore),
		MaxMonthlyViews:    plan.CloneLimit(b.MaxMonthlyViews),
		AnalyticsEnabled:   b.AnalyticsEnabled,
	}
}

// StoreRecord is a store's entitlement state: the assigned plan key, the
// manual override flag, and the bundle settings block. Records are created
// when a store installs the app and are never auto-deleted here.
type StoreRecord struct {
	StoreID         string         `json:"store_id" bson:"store_id"`
	Plan            string         `json:"plan" bson:"plan"`
	OverrideEnabled bool           `json:"plan_override_enabled" bson:"plan_override_enabled"`
	BundleSettings  BundleSettings `json:"bundle_settings" bson:"bundle_settings"`
	Version         int64          `json:"version" bson:"version"`
	CreatedAt       time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" bson:"updated_at"`
}

// Clone returns a deep copy of the record.
func (r StoreRecord) Clone() StoreRecord {
	out := r
	out.BundleSettings = r.BundleSettings.Clone()
	return out
}
