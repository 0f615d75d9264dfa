package notification

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Audience selects which stores a notification targets.
type Audience string

const (
	AudienceAll    Audience = "all"    // every store
	AudiencePlan   Audience = "plan"   // stores on a specific plan
	AudienceStores Audience = "stores" // an explicit store list
)

// Notification is an admin announcement shown in merchant dashboards.
// Delivery and targeting rendering live outside this backend; this package
// only persists the documents.
type Notification struct {
	ID        uuid.UUID  `json:"id" bson:"_id"`
	Title     string     `json:"title" bson:"title"`
	Body      string     `json:"body" bson:"body"`
	Audience  Audience   `json:"audience" bson:"audience"`
	PlanKey   string     `json:"plan_key,omitempty" bson:"plan_key,omitempty"`   // set when Audience is AudiencePlan
	StoreIDs  []string   `json:"store_ids,omitempty" bson:"store_ids,omitempty"` // set when Audience is AudienceStores
	IsActive  bool       `json:"is_active" bson:"is_active"`
	StartsAt  *time.Time `json:"starts_at,omitempty" bson:"starts_at,omitempty"`
	EndsAt    *time.Time `json:"ends_at,omitempty" bson:"ends_at,omitempty"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// ActiveAt reports whether the notification should display at t.
func (n Notification) ActiveAt(t time.Time) bool {
	if !n.IsActive {
		return false
	}
	if n.StartsAt != nil && t.Before(*n.StartsAt) {
		return false
	}
	if n.EndsAt != nil && t.After(*n.EndsAt) {
		return false
	}
	return true
}

// Validate checks the notification is internally consistent.
func (n Notification) Validate() error {
	var errs []error
	if n.Title == "" {
		errs = append(errs, errors.New("title must not be empty"))
	}
	switch n.Audience {
	case AudienceAll:
	case AudiencePlan:
		if n.PlanKey == "" {
			errs = append(errs, errors.New("plan audience requires a plan key"))
		}
	case AudienceStores:
		if len(n.StoreIDs) == 0 {
			errs = append(errs, errors.New("store audience requires at least one store id"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown audience %q", n.Audience))
	}
	if n.StartsAt != nil && n.EndsAt != nil && n.EndsAt.Before(*n.StartsAt) {
		errs = append(errs, errors.New("ends_at must not precede starts_at"))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidNotification}, errs...)...)
	}
	return nil
}
