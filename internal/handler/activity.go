package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/legionhq/legion-tracker/internal/repository"
)

// DefaultActivityLimit caps unbounded history reads for display.
const DefaultActivityLimit = 50

// ActivityHandler exposes the append-only history feed. There is no service
// layer in between: listing and the generic create map straight onto the store.
type ActivityHandler struct {
	activities repository.ActivityStore
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activities repository.ActivityStore) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// List handles GET /api/activities?limit=N, newest first.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := DefaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			RespondError(w, domain.ErrValidation("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	activities, err := h.activities.List(r.Context(), limit)
	if err != nil {
		RespondError(w, domain.ErrInternal("list activities", err))
		return
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	RespondJSON(w, http.StatusOK, activities)
}

// Create handles POST /api/activities, the generic record endpoint used by
// the SPA for client-side events such as dkp_change.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.ActivityInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}
	if err := domain.ValidateActivityInput(input); err != nil {
		RespondError(w, domain.ErrValidation(err.Error()))
		return
	}

	activity := &domain.Activity{
		ID:          uuid.New(),
		Type:        input.Type,
		Description: input.Description,
		BossID:      input.BossID,
		MemberID:    input.MemberID,
		Timestamp:   time.Now().UTC(),
	}
	if err := h.activities.Create(r.Context(), activity); err != nil {
		RespondError(w, domain.ErrInternal("create activity", err))
		return
	}
	RespondJSON(w, http.StatusCreated, activity)
}
