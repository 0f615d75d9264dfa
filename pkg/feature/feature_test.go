package feature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/feature"
)

func TestCatalog_Sanitize(t *testing.T) {
	t.Parallel()

	catalog := feature.Default()

	t.Run("strips unknown keys", func(t *testing.T) {
		t.Parallel()

		m := map[feature.Key]bool{
			feature.BundleAnalytics: true,
			feature.StickyButton:    false,
			"legacyTimer":           true,
			"typoedKey":             false,
		}

		out := catalog.Sanitize(m)

		assert.Equal(t, map[feature.Key]bool{
			feature.BundleAnalytics: true,
			feature.StickyButton:    false,
		}, out)
	})

	t.Run("does not inject missing keys", func(t *testing.T) {
		t.Parallel()

		out := catalog.Sanitize(map[feature.Key]bool{feature.CountdownTimer: true})

		assert.Len(t, out, 1)
		_, present := out[feature.BundleAnalytics]
		assert.False(t, present)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		t.Parallel()

		m := map[feature.Key]bool{"stale": true, feature.ReviewCounter: true}

		_ = catalog.Sanitize(m)

		assert.Len(t, m, 2)
	})

	t.Run("nil map stays nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, catalog.Sanitize(nil))
	})
}

func TestCatalog_Validate(t *testing.T) {
	t.Parallel()

	catalog := feature.Default()

	t.Run("valid map", func(t *testing.T) {
		t.Parallel()

		err := catalog.Validate(map[feature.Key]bool{
			feature.BundleAnalytics: true,
			feature.CustomThemes:    false,
		})

		assert.NoError(t, err)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		t.Parallel()

		err := catalog.Validate(map[feature.Key]bool{"nope": true})

		require.Error(t, err)
		assert.ErrorIs(t, err, feature.ErrUnknownFeature)
	})

	t.Run("nil map is valid", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, catalog.Validate(nil))
	})
}

func TestCatalog_HasAndKeys(t *testing.T) {
	t.Parallel()

	catalog := feature.Default()

	assert.True(t, catalog.Has(feature.FreeShippingBar))
	assert.False(t, catalog.Has("unknown"))

	keys := catalog.Keys()
	require.Len(t, keys, len(catalog))
	assert.Equal(t, catalog[0].Key, keys[0])
}
