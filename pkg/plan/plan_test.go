package plan_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/feature"
	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/plan"
)

func TestPlan_Clone(t *testing.T) {
	t.Parallel()

	original := draftPlan("pro")
	original.OriginalPrice = &plan.Money{Amount: 2900, Currency: "SAR"}
	original.UI = &plan.UIMeta{Badge: "popular", SortOrder: 2}

	clone := original.Clone()

	*clone.Limits[plan.ResourceBundles] = 999
	clone.Features[feature.CustomThemes] = true
	clone.OriginalPrice.Amount = 1
	clone.UI.Badge = "changed"

	assert.EqualValues(t, 10, *original.Limits[plan.ResourceBundles])
	assert.False(t, original.Features[feature.CustomThemes])
	assert.EqualValues(t, 2900, original.OriginalPrice.Amount)
	assert.Equal(t, "popular", original.UI.Badge)
}

func TestLimits_NullRoundTrip(t *testing.T) {
	t.Parallel()

	// Unlimited must serialize as JSON null and come back as nil, never a
	// sentinel integer.
	limits := plan.Limits{
		plan.ResourceBundles:      plan.LimitOf(50),
		plan.ResourceMonthlyViews: plan.Unlimited(),
	}

	raw, err := json.Marshal(limits)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"monthly_views":null`)

	var decoded plan.Limits
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded[plan.ResourceMonthlyViews])
	require.NotNil(t, decoded[plan.ResourceBundles])
	assert.EqualValues(t, 50, *decoded[plan.ResourceBundles])
}

func TestCatalog_Clone(t *testing.T) {
	t.Parallel()

	catalog := plan.Catalog{"pro": draftPlan("pro")}

	clone := catalog.Clone()
	p := clone["pro"]
	*p.Limits[plan.ResourceBundles] = 1

	assert.EqualValues(t, 10, *catalog["pro"].Limits[plan.ResourceBundles])
}

func TestInMemStore(t *testing.T) {
	t.Parallel()

	t.Run("load returns isolated copies", func(t *testing.T) {
		t.Parallel()

		store := plan.NewInMemStore(draftPlan("pro"))

		catalog, err := store.Load(t.Context())
		require.NoError(t, err)
		*catalog["pro"].Limits[plan.ResourceBundles] = 77

		fresh, err := store.Get(t.Context(), "pro")
		require.NoError(t, err)
		assert.EqualValues(t, 10, *fresh.Limits[plan.ResourceBundles])
	})

	t.Run("update requires matching version", func(t *testing.T) {
		t.Parallel()

		p := draftPlan("pro")
		p.Version = 1
		store := plan.NewInMemStore(p)

		require.NoError(t, store.Update(t.Context(), p))

		err := store.Update(t.Context(), p)
		assert.ErrorIs(t, err, plan.ErrConflict)
	})

	t.Run("update of missing plan", func(t *testing.T) {
		t.Parallel()

		store := plan.NewInMemStore()

		err := store.Update(t.Context(), draftPlan("ghost"))

		assert.ErrorIs(t, err, plan.ErrPlanNotFound)
	})

	t.Run("duplicate seed panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			plan.NewInMemStore(draftPlan("pro"), draftPlan("pro"))
		})
	})
}

func TestBaselines(t *testing.T) {
	t.Parallel()

	baselines := plan.Baselines()

	require.Contains(t, baselines, plan.DefaultPlanKey)
	basic := baselines[plan.DefaultPlanKey]
	assert.EqualValues(t, 5, *basic.Limits[plan.ResourceBundles])
	assert.EqualValues(t, 1000, *basic.Limits[plan.ResourceMonthlyViews])

	pro := baselines["pro"]
	assert.Nil(t, pro.Limits[plan.ResourceMonthlyViews], "pro views are unlimited")

	// Baseline feature maps must stay inside the canonical catalog.
	catalog := feature.Default()
	for key, p := range baselines {
		assert.NoError(t, catalog.Validate(p.Features), "plan %q", key)
	}
}
