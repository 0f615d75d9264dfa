package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/entitlement"
	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/feature"
	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/plan"
)

// envelope mirrors the dashboard API contract: {success, data} on success,
// {success:false, message} on failure.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusFor(err))
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Message: err.Error()})
}

// statusFor translates core error kinds to HTTP statuses. The core never
// renders UI text; this boundary owns the mapping.
func statusFor(err error) int {
	switch {
	case errors.Is(err, plan.ErrPlanNotFound),
		errors.Is(err, plan.ErrNoBaseline),
		errors.Is(err, entitlement.ErrStoreNotFound):
		return http.StatusNotFound
	case errors.Is(err, plan.ErrDuplicateKey),
		errors.Is(err, plan.ErrProtectedPlan),
		errors.Is(err, plan.ErrPlanInUse),
		errors.Is(err, plan.ErrConflict),
		errors.Is(err, entitlement.ErrConflict),
		errors.Is(err, entitlement.ErrStoreExists):
		return http.StatusConflict
	case errors.Is(err, plan.ErrInvalidPlan),
		errors.Is(err, entitlement.ErrInvalidSettings),
		errors.Is(err, entitlement.ErrOverrideDisabled),
		errors.Is(err, feature.ErrUnknownFeature),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("malformed request body")

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(errBadRequest, err)
	}
	return nil
}
