package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/legionhq/legion-tracker/internal/repository"
)

// NotificationService is the single-slot broadcast mailbox: publishing
// deactivates every earlier notification, so concurrent publishes race and
// the last committed write wins.
type NotificationService struct {
	notifications repository.NotificationStore
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notifications repository.NotificationStore) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// Publish deactivates all previous notifications and inserts the new one.
func (s *NotificationService) Publish(ctx context.Context, in domain.NotificationInput) (*domain.Notification, error) {
	if err := domain.ValidateNotificationInput(in); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	if err := s.notifications.DeactivateAll(ctx); err != nil {
		return nil, domain.ErrInternal("deactivate notifications", err)
	}

	notification := &domain.Notification{
		ID:        uuid.New(),
		Title:     in.Title,
		Message:   in.Message,
		CreatedBy: in.CreatedBy,
		CreatedAt: time.Now().UTC(),
		IsActive:  true,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, domain.ErrInternal("create notification", err)
	}
	return notification, nil
}

// GetActive returns the current broadcast, or nil if none is active.
func (s *NotificationService) GetActive(ctx context.Context) (*domain.Notification, error) {
	notification, err := s.notifications.GetActive(ctx)
	if err != nil {
		return nil, domain.ErrInternal("find active notification", err)
	}
	return notification, nil
}

// Clear deactivates every notification.
func (s *NotificationService) Clear(ctx context.Context) error {
	if err := s.notifications.DeactivateAll(ctx); err != nil {
		return domain.ErrInternal("deactivate notifications", err)
	}
	return nil
}
