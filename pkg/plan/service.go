package plan

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"time"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/feature"
)

// InUseCheckFunc reports whether any store still references the plan key.
type InUseCheckFunc func(ctx context.Context, key string) (bool, error)

// Service implements administrator lifecycle operations over the catalog.
type Service struct {
	store     Store
	features  feature.Catalog
	baselines map[string]Plan
	inUse     InUseCheckFunc
	onChange  func(context.Context)
}

// Option configures a Service instance.
type Option func(*Service)

// WithInUseCheck wires the reference check consulted before Delete.
// Without it, Delete does not guard against dangling store references.
func WithInUseCheck(fn InUseCheckFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.inUse = fn
		}
	}
}

// WithOnChange registers a hook invoked after every successful mutation,
// typically a cached source's Invalidate.
func WithOnChange(fn func(context.Context)) Option {
	return func(s *Service) {
		if fn != nil {
			s.onChange = fn
		}
	}
}

// WithBaselines overrides the factory baselines Reset restores to.
func WithBaselines(baselines map[string]Plan) Option {
	return func(s *Service) {
		if baselines != nil {
			s.baselines = baselines
		}
	}
}

// NewService creates a plan lifecycle service. A nil feature catalog
// defaults to feature.Default().
func NewService(store Store, features feature.Catalog, opts ...Option) *Service {
	if features == nil {
		features = feature.Default()
	}
	s := &Service{
		store:     store,
		features:  features,
		baselines: Baselines(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Patch is a partial plan update. Nil fields are left untouched. Limits and
// Features merge key-by-key into the existing maps: a present limit key is
// set (nil value meaning unlimited), an absent key is unchanged.
type Patch struct {
	Label         *string              `json:"label,omitempty"`
	Price         *Money               `json:"price,omitempty"`
	OriginalPrice *Money               `json:"original_price,omitempty"`
	IsActive      *bool                `json:"is_active,omitempty"`
	Limits        Limits               `json:"limits,omitempty"`
	Features      map[feature.Key]bool `json:"features,omitempty"`
	UI            *UIMeta              `json:"ui,omitempty"`
}

// List returns all plans sorted by UI sort order, then key.
func (s *Service) List(ctx context.Context) ([]Plan, error) {
	catalog, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	plans := make([]Plan, 0, len(catalog))
	for _, p := range catalog {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool {
		oi, oj := sortOrder(plans[i]), sortOrder(plans[j])
		if oi != oj {
			return oi < oj
		}
		return plans[i].Key < plans[j].Key
	})
	return plans, nil
}

// Get retrieves a single plan by key.
func (s *Service) Get(ctx context.Context, key string) (Plan, error) {
	return s.store.Get(ctx, key)
}

// Create adds a new plan. Plans start active; deactivation goes through
// Update. Feature maps are sanitized against the catalog before storage.
func (s *Service) Create(ctx context.Context, draft Plan) (Plan, error) {
	draft.Features = s.features.Sanitize(draft.Features)
	if err := validate(draft); err != nil {
		return Plan{}, err
	}

	now := time.Now().UTC()
	draft.IsActive = true
	draft.Version = 1
	draft.CreatedAt = now
	draft.UpdatedAt = now

	if err := s.store.Insert(ctx, draft); err != nil {
		return Plan{}, err
	}
	s.notifyChange(ctx)
	return draft, nil
}

// Update applies a partial patch to the plan and commits the merged
// document as a whole; there is no field-level partial commit.
func (s *Service) Update(ctx context.Context, key string, patch Patch) (Plan, error) {
	current, err := s.store.Get(ctx, key)
	if err != nil {
		return Plan{}, err
	}

	merged := applyPatch(current, patch, s.features)
	if err := validate(merged); err != nil {
		return Plan{}, err
	}
	merged.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, merged); err != nil {
		return Plan{}, err
	}
	merged.Version++
	s.notifyChange(ctx)
	return merged, nil
}

// Delete removes a plan. The default tier is never deletable, and a wired
// reference check turns deletion of a referenced plan into ErrPlanInUse.
func (s *Service) Delete(ctx context.Context, key string) error {
	if key == DefaultPlanKey {
		return ErrProtectedPlan
	}

	if s.inUse != nil {
		used, err := s.inUse(ctx, key)
		if err != nil {
			return errors.Join(ErrFailedToCheckPlanUse, err)
		}
		if used {
			return ErrPlanInUse
		}
	}

	if err := s.store.Delete(ctx, key); err != nil {
		return err
	}
	s.notifyChange(ctx)
	return nil
}

// Reset restores the plan's limits, features, and pricing to the factory
// baseline for its key. Label and UI metadata survive a reset.
func (s *Service) Reset(ctx context.Context, key string) (Plan, error) {
	base, ok := s.baselines[key]
	if !ok {
		return Plan{}, fmt.Errorf("%w: %q", ErrNoBaseline, key)
	}

	current, err := s.store.Get(ctx, key)
	if err != nil {
		return Plan{}, err
	}

	current.Limits = base.Limits.Clone()
	current.Features = maps.Clone(base.Features)
	current.Price = base.Price
	if base.OriginalPrice != nil {
		op := *base.OriginalPrice
		current.OriginalPrice = &op
	} else {
		current.OriginalPrice = nil
	}
	current.UpdatedAt = time.Now().UTC()

	if err := s.store.Update(ctx, current); err != nil {
		return Plan{}, err
	}
	current.Version++
	s.notifyChange(ctx)
	return current, nil
}

// EnsureDefaults inserts any factory baseline plan missing from the store.
// Existing plans are left untouched. Intended for first-boot seeding.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	for _, base := range s.baselines {
		p := base.Clone()
		p.IsActive = true
		now := time.Now().UTC()
		p.Version = 1
		p.CreatedAt = now
		p.UpdatedAt = now

		if err := s.store.Insert(ctx, p); err != nil && !errors.Is(err, ErrDuplicateKey) {
			return err
		}
	}
	s.notifyChange(ctx)
	return nil
}

func (s *Service) notifyChange(ctx context.Context) {
	if s.onChange != nil {
		s.onChange(ctx)
	}
}

func applyPatch(p Plan, patch Patch, features feature.Catalog) Plan {
	merged := p.Clone()

	if patch.Label != nil {
		merged.Label = *patch.Label
	}
	if patch.Price != nil {
		merged.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		op := *patch.OriginalPrice
		merged.OriginalPrice = &op
	}
	if patch.IsActive != nil {
		merged.IsActive = *patch.IsActive
	}
	if patch.UI != nil {
		ui := *patch.UI
		merged.UI = &ui
	}

	if len(patch.Limits) > 0 {
		if merged.Limits == nil {
			merged.Limits = Limits{}
		}
		for res, v := range patch.Limits {
			merged.Limits[res] = CloneLimit(v)
		}
	}

	if len(patch.Features) > 0 {
		if merged.Features == nil {
			merged.Features = map[feature.Key]bool{}
		}
		for k, enabled := range features.Sanitize(patch.Features) {
			merged.Features[k] = enabled
		}
	}

	return merged
}

func validate(p Plan) error {
	var errs []error
	if p.Key == "" {
		errs = append(errs, errors.New("key must not be empty"))
	}
	if p.Label == "" {
		errs = append(errs, errors.New("label must not be empty"))
	}
	if p.Price.Amount < 0 {
		errs = append(errs, fmt.Errorf("price must not be negative: %d", p.Price.Amount))
	}
	if p.OriginalPrice != nil && p.OriginalPrice.Amount < 0 {
		errs = append(errs, fmt.Errorf("original price must not be negative: %d", p.OriginalPrice.Amount))
	}
	for _, res := range []Resource{ResourceBundles, ResourceMonthlyViews} {
		v, ok := p.Limits[res]
		if !ok {
			errs = append(errs, fmt.Errorf("limits must define %s", res))
			continue
		}
		if v != nil && *v < 0 {
			errs = append(errs, fmt.Errorf("limit %s must not be negative: %d", res, *v))
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidPlan}, errs...)...)
	}
	return nil
}

func sortOrder(p Plan) int {
	if p.UI == nil {
		return 0
	}
	return p.UI.SortOrder
}
