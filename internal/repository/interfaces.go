package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/legionhq/legion-tracker/internal/domain"
)

// DBTX abstracts pgx.Tx and pgxpool.Pool so the pgx stores work with both.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// BossStore provides access to bosses. Lookups return nil (not an error) when
// the id is absent; Update and Delete signal a missing row distinctly.
type BossStore interface {
	// List returns all bosses ordered by name ascending.
	List(ctx context.Context) ([]domain.Boss, error)

	// Get returns a boss by ID, or nil if not found.
	Get(ctx context.Context, id uuid.UUID) (*domain.Boss, error)

	// Create inserts a new boss.
	Create(ctx context.Context, boss *domain.Boss) error

	// Update overwrites every mutable column of an existing boss.
	// Returns domain.ErrNotFound if the row is gone.
	Update(ctx context.Context, boss *domain.Boss) error

	// Delete removes a boss. Returns false if the id was absent.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// MemberStore provides access to members.
type MemberStore interface {
	// List returns all members ordered by name ascending, including the
	// reserved admin identity (callers filter it for display).
	List(ctx context.Context) ([]domain.Member, error)

	// Get returns a member by ID, or nil if not found.
	Get(ctx context.Context, id uuid.UUID) (*domain.Member, error)

	// GetByName returns a member by display name (case-insensitive), or nil.
	GetByName(ctx context.Context, name string) (*domain.Member, error)

	// Create inserts a new member.
	Create(ctx context.Context, member *domain.Member) error

	// Update overwrites every mutable column of an existing member.
	Update(ctx context.Context, member *domain.Member) error

	// Delete removes a member. Returns false if the id was absent.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ActivityStore is the append-only activity sink. Entries are never mutated,
// deduplicated, or expired.
type ActivityStore interface {
	// List returns activities newest-first, capped at limit when limit > 0.
	List(ctx context.Context, limit int) ([]domain.Activity, error)

	// Create appends a new activity row.
	Create(ctx context.Context, activity *domain.Activity) error
}

// NotificationStore provides the single-slot broadcast mailbox.
type NotificationStore interface {
	// GetActive returns the newest active notification, or nil if none.
	GetActive(ctx context.Context) (*domain.Notification, error)

	// Create inserts a new notification row.
	Create(ctx context.Context, notification *domain.Notification) error

	// DeactivateAll clears the active flag on every notification.
	DeactivateAll(ctx context.Context) error
}

// Store bundles the four entity stores behind one capability surface so the
// pgx and in-memory implementations are interchangeable.
type Store struct {
	Bosses        BossStore
	Members       MemberStore
	Activities    ActivityStore
	Notifications NotificationStore
}

// NewPgStore wires the pgx-backed stores over a shared connection source.
func NewPgStore(db DBTX) *Store {
	return &Store{
		Bosses:        NewPgBossStore(db),
		Members:       NewPgMemberStore(db),
		Activities:    NewPgActivityStore(db),
		Notifications: NewPgNotificationStore(db),
	}
}
