package admin

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/entitlement"
)

type storeHandler struct {
	svc *entitlement.Service
	log *slog.Logger
}

// storeView is the store detail payload: the raw record plus the resolved
// entitlement the dashboard renders from.
type storeView struct {
	Record      entitlement.StoreRecord `json:"record"`
	Entitlement entitlement.Entitlement `json:"entitlement"`
}

func (h *storeHandler) install(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Install(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "install store", err)
		return
	}
	respond(w, http.StatusCreated, rec)
}

func (h *storeHandler) get(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")

	rec, err := h.svc.Get(r.Context(), storeID)
	if err != nil {
		h.fail(w, r, "get store", err)
		return
	}
	ent, err := h.svc.Resolve(r.Context(), storeID)
	if err != nil {
		h.fail(w, r, "resolve store", err)
		return
	}
	respond(w, http.StatusOK, storeView{Record: rec, Entitlement: ent})
}

func (h *storeHandler) changePlan(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Plan string `json:"plan"`
	}
	if err := decode(r, &body); err != nil {
		respondError(w, err)
		return
	}

	rec, err := h.svc.ChangePlan(r.Context(), chi.URLParam(r, "id"), body.Plan)
	if err != nil {
		h.fail(w, r, "change plan", err)
		return
	}
	respond(w, http.StatusOK, rec)
}

func (h *storeHandler) setOverride(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := decode(r, &body); err != nil {
		respondError(w, err)
		return
	}

	rec, err := h.svc.SetOverride(r.Context(), chi.URLParam(r, "id"), body.Enabled)
	if err != nil {
		h.fail(w, r, "set override", err)
		return
	}
	respond(w, http.StatusOK, rec)
}

func (h *storeHandler) updateBundleSettings(w http.ResponseWriter, r *http.Request) {
	var body entitlement.BundleSettings
	if err := decode(r, &body); err != nil {
		respondError(w, err)
		return
	}

	rec, err := h.svc.UpdateBundleSettings(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		h.fail(w, r, "update bundle settings", err)
		return
	}
	respond(w, http.StatusOK, rec)
}

func (h *storeHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if statusFor(err) == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "store operation failed", "op", op, "error", err)
	}
	respondError(w, err)
}
