package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/legionhq/legion-tracker/internal/service"
)

// MemberHandler handles roster endpoints.
type MemberHandler struct {
	memberSvc *service.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberSvc *service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

// List handles GET /api/members.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberSvc.List(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	if members == nil {
		members = []domain.Member{}
	}
	RespondJSON(w, http.StatusOK, members)
}

// Register handles POST /api/members, self-service registration.
func (h *MemberHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input domain.MemberInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	member, err := h.memberSvc.Register(r.Context(), input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, member)
}

// Update handles PUT /api/members/{id}, the privileged full patch.
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	var patch domain.MemberPatch
	if err := DecodeJSON(r, &patch); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	member, err := h.memberSvc.Update(r.Context(), id, patch)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, member)
}

// UpdateSelf handles PUT /api/members/self/{name}: a member updating their
// own level and power.
func (h *MemberHandler) UpdateSelf(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var patch domain.SelfPatch
	if err := DecodeJSON(r, &patch); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	member, err := h.memberSvc.UpdateSelf(r.Context(), name, patch)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, member)
}

// Delete handles DELETE /api/members/{id}.
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	if err := h.memberSvc.Delete(r.Context(), id); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusNoContent, nil)
}
