package admin

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/entitlement"
	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/feature"
	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/plan"
)

// RouterOptions wires the services the admin module exposes.
type RouterOptions struct {
	Plans    *plan.Service
	Stores   *entitlement.Service
	Features feature.Catalog // nil defaults to feature.Default()
	Logger   *slog.Logger    // nil discards
}

// Router mounts the admin API:
//
//	GET    /admin/plans
//	POST   /admin/plans
//	GET    /admin/plans/{key}
//	PUT    /admin/plans/{key}
//	DELETE /admin/plans/{key}
//	POST   /admin/plans/{key}/reset
//	GET    /admin/features
//	POST   /admin/stores/{id}/install
//	GET    /admin/stores/{id}
//	PUT    /admin/stores/{id}/plan
//	PUT    /admin/stores/{id}/override
//	PUT    /admin/stores/{id}/bundle-settings
//
// Authentication is mounted by the caller; this router assumes an already
// authorized administrator.
func Router(opts RouterOptions) chi.Router {
	if opts.Features == nil {
		opts.Features = feature.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	ph := &planHandler{svc: opts.Plans, features: opts.Features, log: opts.Logger}
	sh := &storeHandler{svc: opts.Stores, log: opts.Logger}

	r := chi.NewRouter()
	r.Route("/admin", func(ar chi.Router) {
		ar.Route("/plans", func(pr chi.Router) {
			pr.Get("/", ph.list)
			pr.Post("/", ph.create)
			pr.Get("/{key}", ph.get)
			pr.Put("/{key}", ph.update)
			pr.Delete("/{key}", ph.delete)
			pr.Post("/{key}/reset", ph.reset)
		})
		ar.Get("/features", ph.listFeatures)
		ar.Route("/stores/{id}", func(sr chi.Router) {
			sr.Post("/install", sh.install)
			sr.Get("/", sh.get)
			sr.Put("/plan", sh.changePlan)
			sr.Put("/override", sh.setOverride)
			sr.Put("/bundle-settings", sh.updateBundleSettings)
		})
	})
	return r
}
