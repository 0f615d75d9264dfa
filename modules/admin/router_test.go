package admin_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/7azemaamer/salla-adv-bundler-sub002/modules/admin"
	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/entitlement"
	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/feature"
	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/plan"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	planStore := plan.NewInMemStore()
	stores := entitlement.NewService(entitlement.NewInMemStore(), planStore)
	plans := plan.NewService(planStore, feature.Default(),
		plan.WithInUseCheck(stores.PlanInUse))
	require.NoError(t, plans.EnsureDefaults(t.Context()))

	return admin.Router(admin.RouterOptions{Plans: plans, Stores: stores})
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env),
		"every response carries the JSON envelope")
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	return rec.Code, env
}

func TestPlanRoutes(t *testing.T) {
	t.Parallel()

	t.Run("list returns the seeded catalog", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, env := do(t, h, http.MethodGet, "/admin/plans", "")

		require.Equal(t, http.StatusOK, code)
		require.True(t, env.Success)

		var plans []plan.Plan
		require.NoError(t, json.Unmarshal(env.Data, &plans))
		require.Len(t, plans, 3)
		assert.Equal(t, "basic", plans[0].Key, "sorted by UI order")
	})

	t.Run("get unknown plan is 404", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, env := do(t, h, http.MethodGet, "/admin/plans/nope", "")

		assert.Equal(t, http.StatusNotFound, code)
		assert.False(t, env.Success)
		assert.NotEmpty(t, env.Message)
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)
		body := `{
			"key": "starter",
			"label": "Starter",
			"price": {"amount": 900, "currency": "SAR"},
			"limits": {"max_bundles": 3, "monthly_views": 500},
			"features": {"stickyButton": true}
		}`

		code, env := do(t, h, http.MethodPost, "/admin/plans", body)

		require.Equal(t, http.StatusCreated, code)
		require.True(t, env.Success)

		var created plan.Plan
		require.NoError(t, json.Unmarshal(env.Data, &created))
		assert.Equal(t, "starter", created.Key)
		assert.True(t, created.IsActive)
		assert.EqualValues(t, 1, created.Version)
	})

	t.Run("create with duplicate key is 409", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)
		body := `{
			"key": "basic",
			"label": "Basic again",
			"price": {"amount": 0, "currency": "SAR"},
			"limits": {"max_bundles": 1, "monthly_views": 1}
		}`

		code, env := do(t, h, http.MethodPost, "/admin/plans", body)

		assert.Equal(t, http.StatusConflict, code)
		assert.False(t, env.Success)
	})

	t.Run("create with unknown feature key is 400", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)
		body := `{
			"key": "starter",
			"label": "Starter",
			"price": {"amount": 900, "currency": "SAR"},
			"limits": {"max_bundles": 3, "monthly_views": 500},
			"features": {"teleportation": true}
		}`

		code, env := do(t, h, http.MethodPost, "/admin/plans", body)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, env.Message, "teleportation")
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, env := do(t, h, http.MethodPost, "/admin/plans", "{not json")

		assert.Equal(t, http.StatusBadRequest, code)
		assert.False(t, env.Success)
	})

	t.Run("update patches a single field", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, env := do(t, h, http.MethodPut, "/admin/plans/pro", `{"label": "Pro Max"}`)

		require.Equal(t, http.StatusOK, code)

		var updated plan.Plan
		require.NoError(t, json.Unmarshal(env.Data, &updated))
		assert.Equal(t, "Pro Max", updated.Label)
		assert.EqualValues(t, 2, updated.Version)
	})

	t.Run("update can set a limit to unlimited", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, env := do(t, h, http.MethodPut, "/admin/plans/pro",
			`{"limits": {"max_bundles": null}}`)

		require.Equal(t, http.StatusOK, code)
		assert.True(t, strings.Contains(string(env.Data), `"max_bundles":null`))
	})

	t.Run("deleting the default plan is 409", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, env := do(t, h, http.MethodDelete, "/admin/plans/basic", "")

		assert.Equal(t, http.StatusConflict, code)
		assert.False(t, env.Success)
	})

	t.Run("deleting a referenced plan is 409", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, _ := do(t, h, http.MethodPost, "/admin/stores/s1/install", "")
		require.Equal(t, http.StatusCreated, code)
		code, _ = do(t, h, http.MethodPut, "/admin/stores/s1/plan", `{"plan": "pro"}`)
		require.Equal(t, http.StatusOK, code)

		code, env := do(t, h, http.MethodDelete, "/admin/plans/pro", "")

		assert.Equal(t, http.StatusConflict, code)
		assert.False(t, env.Success)
	})

	t.Run("delete then get is 404", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, _ := do(t, h, http.MethodDelete, "/admin/plans/enterprise", "")
		require.Equal(t, http.StatusOK, code)

		code, _ = do(t, h, http.MethodGet, "/admin/plans/enterprise", "")
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("reset restores baseline pricing", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, _ := do(t, h, http.MethodPut, "/admin/plans/pro",
			`{"price": {"amount": 99900, "currency": "SAR"}}`)
		require.Equal(t, http.StatusOK, code)

		code, env := do(t, h, http.MethodPost, "/admin/plans/pro/reset", "")

		require.Equal(t, http.StatusOK, code)

		var p plan.Plan
		require.NoError(t, json.Unmarshal(env.Data, &p))
		assert.EqualValues(t, 4900, p.Price.Amount)
	})

	t.Run("features lists the catalog", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, env := do(t, h, http.MethodGet, "/admin/features", "")

		require.Equal(t, http.StatusOK, code)

		var catalog feature.Catalog
		require.NoError(t, json.Unmarshal(env.Data, &catalog))
		assert.Equal(t, feature.Default(), catalog)
	})
}

func TestStoreRoutes(t *testing.T) {
	t.Parallel()

	t.Run("install then get", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, env := do(t, h, http.MethodPost, "/admin/stores/s1/install", "")

		require.Equal(t, http.StatusCreated, code)

		var rec entitlement.StoreRecord
		require.NoError(t, json.Unmarshal(env.Data, &rec))
		assert.Equal(t, "basic", rec.Plan)
		assert.False(t, rec.OverrideEnabled)

		code, env = do(t, h, http.MethodGet, "/admin/stores/s1", "")
		require.Equal(t, http.StatusOK, code)

		var view struct {
			Record      entitlement.StoreRecord `json:"record"`
			Entitlement entitlement.Entitlement `json:"entitlement"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, "s1", view.Record.StoreID)
		require.NotNil(t, view.Entitlement.Limits[plan.ResourceBundles])
		assert.EqualValues(t, 5, *view.Entitlement.Limits[plan.ResourceBundles])
		assert.False(t, view.Entitlement.Features[feature.CustomThemes])
	})

	t.Run("get before install is 404", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, env := do(t, h, http.MethodGet, "/admin/stores/ghost", "")

		assert.Equal(t, http.StatusNotFound, code)
		assert.False(t, env.Success)
	})

	t.Run("change to unknown plan is 404", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, _ := do(t, h, http.MethodPost, "/admin/stores/s1/install", "")
		require.Equal(t, http.StatusCreated, code)

		code, env := do(t, h, http.MethodPut, "/admin/stores/s1/plan", `{"plan": "nope"}`)

		assert.Equal(t, http.StatusNotFound, code)
		assert.False(t, env.Success)
	})

	t.Run("bundle settings are gated on override mode", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, _ := do(t, h, http.MethodPost, "/admin/stores/s1/install", "")
		require.Equal(t, http.StatusCreated, code)

		body := `{"max_bundles_per_store": 99, "max_monthly_views": null}`

		code, env := do(t, h, http.MethodPut, "/admin/stores/s1/bundle-settings", body)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.False(t, env.Success)

		code, _ = do(t, h, http.MethodPut, "/admin/stores/s1/override", `{"enabled": true}`)
		require.Equal(t, http.StatusOK, code)

		code, env = do(t, h, http.MethodPut, "/admin/stores/s1/bundle-settings", body)
		require.Equal(t, http.StatusOK, code)

		var rec entitlement.StoreRecord
		require.NoError(t, json.Unmarshal(env.Data, &rec))
		require.NotNil(t, rec.BundleSettings.MaxBundlesPerStore)
		assert.EqualValues(t, 99, *rec.BundleSettings.MaxBundlesPerStore)
		assert.Nil(t, rec.BundleSettings.MaxMonthlyViews)
	})

	t.Run("disabling override re-mirrors plan limits", func(t *testing.T) {
		t.Parallel()
		h := newTestRouter(t)

		code, _ := do(t, h, http.MethodPost, "/admin/stores/s1/install", "")
		require.Equal(t, http.StatusCreated, code)
		code, _ = do(t, h, http.MethodPut, "/admin/stores/s1/override", `{"enabled": true}`)
		require.Equal(t, http.StatusOK, code)
		code, _ = do(t, h, http.MethodPut, "/admin/stores/s1/bundle-settings",
			`{"max_bundles_per_store": 99}`)
		require.Equal(t, http.StatusOK, code)

		code, env := do(t, h, http.MethodPut, "/admin/stores/s1/override", `{"enabled": false}`)

		require.Equal(t, http.StatusOK, code)

		var rec entitlement.StoreRecord
		require.NoError(t, json.Unmarshal(env.Data, &rec))
		require.NotNil(t, rec.BundleSettings.MaxBundlesPerStore)
		assert.EqualValues(t, 5, *rec.BundleSettings.MaxBundlesPerStore)
	})
}
