package handler

import (
	"net/http"

	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/legionhq/legion-tracker/internal/service"
)

// NotificationHandler handles the broadcast banner endpoints.
type NotificationHandler struct {
	notificationSvc *service.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationSvc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// GetActive handles GET /api/notifications/active. Responds with a JSON null
// when no broadcast is active, matching what the SPA polls for.
func (h *NotificationHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	notification, err := h.notificationSvc.GetActive(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	if notification == nil {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null\n"))
		return
	}
	RespondJSON(w, http.StatusOK, notification)
}

// Publish handles POST /api/notifications.
func (h *NotificationHandler) Publish(w http.ResponseWriter, r *http.Request) {
	var input domain.NotificationInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondError(w, domain.ErrValidation("invalid request body"))
		return
	}

	notification, err := h.notificationSvc.Publish(r.Context(), input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, notification)
}

// Clear handles DELETE /api/notifications.
func (h *NotificationHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.notificationSvc.Clear(r.Context()); err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusNoContent, nil)
}
