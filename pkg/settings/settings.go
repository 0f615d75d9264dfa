package settings

import (
	"time"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/plan"
)

// StoreSettings groups the storefront display widgets a merchant can tune:
// countdown timer, free-shipping bar, and the review counter. These are
// pure display state; entitlement to show them at all is resolved
// separately against the store's plan.
type StoreSettings struct {
	StoreID      string               `json:"store_id" bson:"store_id"`
	Timer        TimerSettings        `json:"timer" bson:"timer"`
	FreeShipping FreeShippingSettings `json:"free_shipping" bson:"free_shipping"`
	Reviews      ReviewSettings       `json:"reviews" bson:"reviews"`
	UpdatedAt    time.Time            `json:"updated_at" bson:"updated_at"`
}

// TimerSettings configures the countdown timer widget.
type TimerSettings struct {
	Enabled         bool   `json:"enabled" bson:"enabled"`
	Minutes         int    `json:"minutes" bson:"minutes"`
	Headline        string `json:"headline" bson:"headline"`
	RestartOnExpiry bool   `json:"restart_on_expiry" bson:"restart_on_expiry"`
}

// FreeShippingSettings configures the free-shipping banner.
type FreeShippingSettings struct {
	Enabled   bool       `json:"enabled" bson:"enabled"`
	Threshold plan.Money `json:"threshold" bson:"threshold"` // cart total qualifying for free shipping
	Message   string     `json:"message" bson:"message"`
}

// ReviewSettings configures the review counter widget and carries the
// incrementer's per-store state.
type ReviewSettings struct {
	Enabled      bool      `json:"enabled" bson:"enabled"`
	Count        int64     `json:"count" bson:"count"`
	MinDailyStep int64     `json:"min_daily_step" bson:"min_daily_step"`
	MaxDailyStep int64     `json:"max_daily_step" bson:"max_daily_step"`
	LastBumpAt   time.Time `json:"last_bump_at" bson:"last_bump_at"` // guards the once-per-24h window, no lock involved
}

// Defaults returns the settings a store starts with.
func Defaults(storeID string) StoreSettings {
	return StoreSettings{
		StoreID: storeID,
		Timer: TimerSettings{
			Minutes:         15,
			RestartOnExpiry: true,
		},
		FreeShipping: FreeShippingSettings{
			Threshold: plan.Money{Amount: 20000, Currency: "SAR"},
		},
		Reviews: ReviewSettings{
			MinDailyStep: 1,
			MaxDailyStep: 5,
		},
	}
}
