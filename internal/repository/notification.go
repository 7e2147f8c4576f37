package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/legionhq/legion-tracker/internal/domain"
)

// PgNotificationStore implements NotificationStore using pgx. The "current"
// broadcast is simply the newest row with is_active = true; publishing clears
// the flag on everything else first.
type PgNotificationStore struct {
	db DBTX
}

// NewPgNotificationStore creates a new PgNotificationStore.
func NewPgNotificationStore(db DBTX) *PgNotificationStore {
	return &PgNotificationStore{db: db}
}

// GetActive returns the newest active notification, or nil if none.
func (s *PgNotificationStore) GetActive(ctx context.Context) (*domain.Notification, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, title, message, created_by, created_at, is_active
		 FROM notifications WHERE is_active = true
		 ORDER BY created_at DESC LIMIT 1`)

	n := &domain.Notification{}
	err := row.Scan(&n.ID, &n.Title, &n.Message, &n.CreatedBy, &n.CreatedAt, &n.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan notification: %w", err)
	}
	return n, nil
}

// Create inserts a new notification row.
func (s *PgNotificationStore) Create(ctx context.Context, notification *domain.Notification) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO notifications (id, title, message, created_by, created_at, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		notification.ID, notification.Title, notification.Message,
		notification.CreatedBy, notification.CreatedAt, notification.IsActive,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// DeactivateAll clears the active flag on every notification.
func (s *PgNotificationStore) DeactivateAll(ctx context.Context) error {
	_, err := s.db.Exec(ctx,
		`UPDATE notifications SET is_active = false WHERE is_active = true`)
	if err != nil {
		return fmt.Errorf("deactivate notifications: %w", err)
	}
	return nil
}
