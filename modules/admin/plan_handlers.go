package admin

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/feature"
	"github.com/7azemaamer/salla-adv-bundler-sub002/pkg/plan"
)

type planHandler struct {
	svc      *plan.Service
	features feature.Catalog
	log      *slog.Logger
}

func (h *planHandler) list(w http.ResponseWriter, r *http.Request) {
	plans, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, r, "list plans", err)
		return
	}
	respond(w, http.StatusOK, plans)
}

func (h *planHandler) listFeatures(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.features)
}

func (h *planHandler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.fail(w, r, "get plan", err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *planHandler) create(w http.ResponseWriter, r *http.Request) {
	var draft plan.Plan
	if err := decode(r, &draft); err != nil {
		respondError(w, err)
		return
	}
	// Unknown feature keys in an admin payload are a client bug; reject
	// loudly here even though the service would silently sanitize.
	if err := h.features.Validate(draft.Features); err != nil {
		respondError(w, err)
		return
	}

	created, err := h.svc.Create(r.Context(), draft)
	if err != nil {
		h.fail(w, r, "create plan", err)
		return
	}
	respond(w, http.StatusCreated, created)
}

func (h *planHandler) update(w http.ResponseWriter, r *http.Request) {
	var patch plan.Patch
	if err := decode(r, &patch); err != nil {
		respondError(w, err)
		return
	}
	if err := h.features.Validate(patch.Features); err != nil {
		respondError(w, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), chi.URLParam(r, "key"), patch)
	if err != nil {
		h.fail(w, r, "update plan", err)
		return
	}
	respond(w, http.StatusOK, updated)
}

func (h *planHandler) delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := h.svc.Delete(r.Context(), key); err != nil {
		h.fail(w, r, "delete plan", err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"key": key})
}

func (h *planHandler) reset(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Reset(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		h.fail(w, r, "reset plan", err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *planHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if statusFor(err) == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "plan operation failed", "op", op, "error", err)
	}
	respondError(w, err)
}
