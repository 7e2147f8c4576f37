package repository

import (
	"context"
	"fmt"

	"github.com/legionhq/legion-tracker/internal/domain"
)

// PgActivityStore implements ActivityStore using pgx. Append-only: there is no
// update or delete path, and boss/member references are not enforced so rows
// survive the entities they describe.
type PgActivityStore struct {
	db DBTX
}

// NewPgActivityStore creates a new PgActivityStore.
func NewPgActivityStore(db DBTX) *PgActivityStore {
	return &PgActivityStore{db: db}
}

// List returns activities newest-first, capped at limit when limit > 0.
func (s *PgActivityStore) List(ctx context.Context, limit int) ([]domain.Activity, error) {
	query := `SELECT id, type, description, boss_id, member_id, timestamp
		 FROM activities ORDER BY timestamp DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.Description, &a.BossID, &a.MemberID, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// Create appends a new activity row.
func (s *PgActivityStore) Create(ctx context.Context, activity *domain.Activity) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO activities (id, type, description, boss_id, member_id, timestamp)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		activity.ID, activity.Type, activity.Description, activity.BossID, activity.MemberID, activity.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
