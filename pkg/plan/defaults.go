package plan

import "github.com/7azemaamer/salla-adv-bundler-sub002/pkg/feature"

// Baselines returns the factory configuration for the built-in tiers.
// Reset restores a plan's limits, features, and pricing to these values;
// administrator edits to labels and UI metadata survive a reset.
func Baselines() map[string]Plan {
	return map[string]Plan{
		DefaultPlanKey: {
			Key:   DefaultPlanKey,
			Label: "Basic",
			Price: Money{Amount: 0, Currency: "SAR"},
			Limits: Limits{
				ResourceBundles:      LimitOf(5),
				ResourceMonthlyViews: LimitOf(1000),
			},
			Features: map[feature.Key]bool{
				feature.StickyButton: true,
			},
			UI: &UIMeta{SortOrder: 1},
		},
		"pro": {
			Key:           "pro",
			Label:         "Pro",
			Price:         Money{Amount: 4900, Currency: "SAR"},
			OriginalPrice: &Money{Amount: 6900, Currency: "SAR"},
			Limits: Limits{
				ResourceBundles:      LimitOf(50),
				ResourceMonthlyViews: Unlimited(),
			},
			Features: map[feature.Key]bool{
				feature.StickyButton:    true,
				feature.CountdownTimer:  true,
				feature.FreeShippingBar: true,
				feature.ReviewCounter:   true,
				feature.BundleAnalytics: true,
			},
			UI: &UIMeta{Badge: "popular", SortOrder: 2},
		},
		"enterprise": {
			Key:   "enterprise",
			Label: "Enterprise",
			Price: Money{Amount: 14900, Currency: "SAR"},
			Limits: Limits{
				ResourceBundles:      Unlimited(),
				ResourceMonthlyViews: Unlimited(),
			},
			Features: map[feature.Key]bool{
				feature.StickyButton:    true,
				feature.CountdownTimer:  true,
				feature.FreeShippingBar: true,
				feature.ReviewCounter:   true,
				feature.BundleAnalytics: true,
				feature.CustomThemes:    true,
				feature.PrioritySupport: true,
			},
			UI: &UIMeta{SortOrder: 3},
		},
	}
}
