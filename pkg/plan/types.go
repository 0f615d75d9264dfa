package plan

// Resource identifies a countable entitlement dimension.
type Resource string

// Resources every plan must define a limit for.
const (
	ResourceBundles      Resource = "max_bundles"
	ResourceMonthlyViews Resource = "monthly_views"
)

// Limits maps a resource to its ceiling. A nil value means unlimited and
// must survive storage round-trips as null, never a sentinel integer.
type Limits map[Resource]*int64

// Clone returns a deep copy of the limits map, including pointed-to values.
func (l Limits) Clone() Limits {
	if l == nil {
		return nil
	}
	out := make(Limits, len(l))
	for res, v := range l {
		out[res] = CloneLimit(v)
	}
	return out
}

// LimitOf returns a pointer to n, for building limit maps inline.
func LimitOf(n int64) *int64 { return &n }

// Unlimited returns the unlimited marker for a limit field.
func Unlimited() *int64 { return nil }

// CloneLimit copies a single limit value so later mutation of the source
// cannot reach a materialized snapshot.
func CloneLimit(v *int64) *int64 {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

// Money is an amount in the smallest currency unit.
// For example, 29.00 SAR is Amount: 2900, Currency: "SAR".
type Money struct {
	Amount   int64  `json:"amount" bson:"amount"`
	Currency string `json:"currency" bson:"currency"`
}

// UIMeta holds display-only plan metadata. It never affects entitlement.
type UIMeta struct {
	Badge     string `json:"badge,omitempty" bson:"badge,omitempty"`
	Accent    string `json:"accent,omitempty" bson:"accent,omitempty"`
	SortOrder int    `json:"sort_order" bson:"sort_order"`
}
