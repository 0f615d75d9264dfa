package plan

import (
	"maps"
	"time"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/feature"
)

// DefaultPlanKey is the non-deletable baseline tier every store starts on.
const DefaultPlanKey = "basic"

// Plan describes a subscription tier and its resource/feature constraints.
// Key is the immutable identity; everything else is administrator-editable.
type Plan struct {
	Key           string               `json:"key" bson:"key"`
	Label         string               `json:"label" bson:"label"`
	Price         Money                `json:"price" bson:"price"`
	OriginalPrice *Money               `json:"original_price,omitempty" bson:"original_price,omitempty"` // pre-discount price for strikethrough display
	IsActive      bool                 `json:"is_active" bson:"is_active"`
	Limits        Limits               `json:"limits" bson:"limits"`
	Features      map[feature.Key]bool `json:"features" bson:"features"`
	UI            *UIMeta              `json:"ui,omitempty" bson:"ui,omitempty"`
	Version       int64                `json:"version" bson:"version"`
	CreatedAt     time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at" bson:"updated_at"`
}

// Clone returns a deep copy of the plan.
func (p Plan) Clone() Plan {
	out := p
	out.Limits = p.Limits.Clone()
	out.Features = maps.Clone(p.Features)
	if p.OriginalPrice != nil {
		op := *p.OriginalPrice
		out.OriginalPrice = &op
	}
	if p.UI != nil {
		ui := *p.UI
		out.UI = &ui
	}
	return out
}

// HasFeature reports whether the plan explicitly enables the given key.
// Absent keys count as not entitled.
func (p Plan) HasFeature(k feature.Key) bool {
	return p.Features[k]
}

// Catalog is a point-in-time snapshot of all plans keyed by plan key.
// Callers should re-load the snapshot per resolution rather than hold it.
type Catalog map[string]Plan

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for key, p := range c {
		out[key] = p.Clone()
	}
	return out
}
