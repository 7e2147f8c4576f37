package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/legionhq/legion-tracker/internal/service"
)

// BossHandler handles boss endpoints.
type BossHandler struct {
	bossSvc *service.BossService
}

// NewBossHandler creates a new BossHandler.
func NewBossHandler(bossSvc *service.BossService) *BossHandler {
	return &BossHandler{bossSvc: bossSvc}
}

// List handles GET /api/bosses.
func (h *BossHandler) List(w http.ResponseWriter, r *http.Request) {
	bosses, err := h.bossSvc.List(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	if bosses == nil {
		bosses = []domain.Boss{}
	}
	RespondJSON(w, http.StatusOK, bosses)
}

// Create handles POST /api/bosses.
func (h *BossHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.BossInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	boss, err := h.bossSvc.Create(r.Context(), input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, boss)
}

type batchCreateRequest struct {
	Bosses []domain.BossInput `json:"bosses"`
}

// CreateBatch handles POST /api/bosses/batch.
func (h *BossHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var input batchCreateRequest
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	bosses, err := h.bossSvc.CreateBatch(r.Context(), input.Bosses)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, bosses)
}

// Update handles PUT /api/bosses/{id}.
func (h *BossHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	var patch domain.BossPatch
	if err := DecodeJSON(r, &patch); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	boss, err := h.bossSvc.Update(r.Context(), id, patch)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, boss)
}

type killRequest struct {
	KilledBy string `json:"killedBy"`
}

// Kill handles POST /api/bosses/{id}/kill.
func (h *BossHandler) Kill(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	// Body is optional: a kill without a killer is legitimate.
	var input killRequest
	_ = DecodeJSON(r, &input)

	boss, err := h.bossSvc.Kill(r.Context(), id, input.KilledBy)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, boss)
}

// Revive handles POST /api/bosses/{id}/revive.
func (h *BossHandler) Revive(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	boss, err := h.bossSvc.Revive(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, boss)
}

// Delete handles DELETE /api/bosses/{id}.
func (h *BossHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	if err := h.bossSvc.Delete(r.Context(), id); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusNoContent, nil)
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.ErrValidation("invalid id")
	}
	return id, nil
}
