package entitlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/feature"
	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/plan"
)

// Service combines a record store with a plan catalog source and exposes
// the store-facing entitlement operations. The catalog is re-loaded on
// every operation so mutations by the plan lifecycle service are visible
// without restarts.
type Service struct {
	store    Store
	plans    plan.Source
	resolver Resolver
}

// ServiceOption configures a Service instance.
type ServiceOption func(*Service)

// WithFeatureCatalog overrides the feature catalog the resolver defaults
// feature maps against.
func WithFeatureCatalog(features feature.Catalog) ServiceOption {
	return func(s *Service) {
		if features != nil {
			s.resolver = NewResolver(features)
		}
	}
}

// NewService creates an entitlement service over a record store and a plan
// catalog source.
func NewService(store Store, plans plan.Source, opts ...ServiceOption) *Service {
	s := &Service{
		store:    store,
		plans:    plans,
		resolver: NewResolver(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Install creates the default entitlement record for a newly installed
// store: the default plan, override disabled, bundle settings mirrored from
// the plan's limits. Install is idempotent; an existing record is returned
// unchanged.
func (s *Service) Install(ctx context.Context, storeID string) (StoreRecord, error) {
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return StoreRecord{}, err
	}
	base, ok := catalog[plan.DefaultPlanKey]
	if !ok {
		return StoreRecord{}, fmt.Errorf("%w: %q", ErrPlanNotFound, plan.DefaultPlanKey)
	}

	now := time.Now().UTC()
	rec := StoreRecord{
		StoreID: storeID,
		Plan:    plan.DefaultPlanKey,
		BundleSettings: BundleSettings{
			MaxBundlesPerStore: plan.CloneLimit(base.Limits[plan.ResourceBundles]),
			MaxMonthlyViews:    plan.CloneLimit(base.Limits[plan.ResourceMonthlyViews]),
		},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Insert(ctx, rec); err != nil {
		if errors.Is(err, ErrStoreExists) {
			return s.store.Get(ctx, storeID)
		}
		return StoreRecord{}, err
	}
	return rec, nil
}

// Get retrieves a store's entitlement record.
func (s *Service) Get(ctx context.Context, storeID string) (StoreRecord, error) {
	return s.store.Get(ctx, storeID)
}

// Resolve computes the effective entitlement for a store against a fresh
// catalog snapshot.
func (s *Service) Resolve(ctx context.Context, storeID string) (Entitlement, error) {
	rec, err := s.store.Get(ctx, storeID)
	if err != nil {
		return Entitlement{}, err
	}
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return Entitlement{}, err
	}
	return s.resolver.Resolve(rec, catalog)
}

// ChangePlan assigns a new plan to the store and re-mirrors the bundle
// settings limits unless override mode is active.
func (s *Service) ChangePlan(ctx context.Context, storeID, newPlanKey string) (StoreRecord, error) {
	rec, err := s.store.Get(ctx, storeID)
	if err != nil {
		return StoreRecord{}, err
	}
	catalog, err := s.loadCatalog(ctx)
	if err != nil {
		return StoreRecord{}, err
	}

	synced, err := SyncOnPlanChange(rec, newPlanKey, catalog)
	if err != nil {
		return StoreRecord{}, err
	}
	return s.commit(ctx, synced)
}

// SetOverride toggles manual override mode. Disabling it immediately
// re-mirrors the limit fields from the assigned plan, because the derived
// invariant must hold whenever the flag is false. Enabling it freezes the
// current values as the store's own.
func (s *Service) SetOverride(ctx context.Context, storeID string, enabled bool) (StoreRecord, error) {
	rec, err := s.store.Get(ctx, storeID)
	if err != nil {
		return StoreRecord{}, err
	}
	if rec.OverrideEnabled == enabled {
		return rec, nil
	}

	rec.OverrideEnabled = enabled
	if !enabled {
		catalog, err := s.loadCatalog(ctx)
		if err != nil {
			return StoreRecord{}, err
		}
		p, ok := catalog[rec.Plan]
		if !ok {
			return StoreRecord{}, fmt.Errorf("%w: store %s references %q", ErrPlanNotFound, rec.StoreID, rec.Plan)
		}
		rec.BundleSettings.MaxBundlesPerStore = plan.CloneLimit(p.Limits[plan.ResourceBundles])
		rec.BundleSettings.MaxMonthlyViews = plan.CloneLimit(p.Limits[plan.ResourceMonthlyViews])
	}
	return s.commit(ctx, rec)
}

// UpdateBundleSettings replaces the store's limit fields. Writes are only
// accepted while override mode is active; in derived mode they would be
// silently clobbered by the next plan sync.
func (s *Service) UpdateBundleSettings(ctx context.Context, storeID string, settings BundleSettings) (StoreRecord, error) {
	rec, err := s.store.Get(ctx, storeID)
	if err != nil {
		return StoreRecord{}, err
	}
	if !rec.OverrideEnabled {
		return StoreRecord{}, ErrOverrideDisabled
	}
	if err := validateSettings(settings); err != nil {
		return StoreRecord{}, err
	}

	rec.BundleSettings = settings.Clone()
	return s.commit(ctx, rec)
}

// SetAnalytics flips the analytics toggle. Unlike the limit fields it is
// store-owned in both modes, so no override gate applies.
func (s *Service) SetAnalytics(ctx context.Context, storeID string, enabled bool) (StoreRecord, error) {
	rec, err := s.store.Get(ctx, storeID)
	if err != nil {
		return StoreRecord{}, err
	}
	if rec.BundleSettings.AnalyticsEnabled == enabled {
		return rec, nil
	}
	rec.BundleSettings.AnalyticsEnabled = enabled
	return s.commit(ctx, rec)
}

// PlanInUse reports whether any store references the plan key. Wire it as
// the plan service's in-use check so deleting a referenced plan fails.
func (s *Service) PlanInUse(ctx context.Context, planKey string) (bool, error) {
	n, err := s.store.CountByPlan(ctx, planKey)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Service) commit(ctx context.Context, rec StoreRecord) (StoreRecord, error) {
	rec.UpdatedAt = time.Now().UTC()
	if err := s.store.Update(ctx, rec); err != nil {
		return StoreRecord{}, err
	}
	rec.Version++
	return rec, nil
}

func (s *Service) loadCatalog(ctx context.Context) (plan.Catalog, error) {
	catalog, err := s.plans.Load(ctx)
	if err != nil {
		return nil, errors.Join(plan.ErrFailedToLoadPlans, err)
	}
	return catalog, nil
}

func validateSettings(settings BundleSettings) error {
	var errs []error
	if v := settings.MaxBundlesPerStore; v != nil && *v < 0 {
		errs = append(errs, fmt.Errorf("max_bundles_per_store must not be negative: %d", *v))
	}
	if v := settings.MaxMonthlyViews; v != nil && *v < 0 {
		errs = append(errs, fmt.Errorf("max_monthly_views must not be negative: %d", *v))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidSettings}, errs...)...)
	}
	return nil
}
