package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/legionhq/legion-tracker/internal/domain"
)

// PgBossStore implements BossStore using pgx.
type PgBossStore struct {
	db DBTX
}

// NewPgBossStore creates a new PgBossStore.
func NewPgBossStore(db DBTX) *PgBossStore {
	return &PgBossStore{db: db}
}

const bossColumns = `id, name, level, location, respawn_time_hours, is_alive,
	last_killed_at, last_killed_by, icon_type, icon_color, image_url`

// List returns all bosses ordered by name ascending.
func (s *PgBossStore) List(ctx context.Context) ([]domain.Boss, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+bossColumns+` FROM bosses ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list bosses: %w", err)
	}
	defer rows.Close()

	var bosses []domain.Boss
	for rows.Next() {
		b, err := scanBoss(rows)
		if err != nil {
			return nil, err
		}
		bosses = append(bosses, *b)
	}
	return bosses, rows.Err()
}

// Get returns a boss by ID, or nil if not found.
func (s *PgBossStore) Get(ctx context.Context, id uuid.UUID) (*domain.Boss, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+bossColumns+` FROM bosses WHERE id = $1`, id)
	b, err := scanBoss(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return b, err
}

// Create inserts a new boss.
func (s *PgBossStore) Create(ctx context.Context, boss *domain.Boss) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO bosses (id, name, level, location, respawn_time_hours, is_alive,
		 last_killed_at, last_killed_by, icon_type, icon_color, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		boss.ID, boss.Name, boss.Level, boss.Location, boss.RespawnTimeHours, boss.IsAlive,
		boss.LastKilledAt, boss.LastKilledBy, boss.IconType, boss.IconColor, boss.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("insert boss: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of an existing boss.
func (s *PgBossStore) Update(ctx context.Context, boss *domain.Boss) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE bosses SET
		 name = $2, level = $3, location = $4, respawn_time_hours = $5, is_alive = $6,
		 last_killed_at = $7, last_killed_by = $8, icon_type = $9, icon_color = $10, image_url = $11
		 WHERE id = $1`,
		boss.ID, boss.Name, boss.Level, boss.Location, boss.RespawnTimeHours, boss.IsAlive,
		boss.LastKilledAt, boss.LastKilledBy, boss.IconType, boss.IconColor, boss.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("update boss: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("boss", boss.ID.String())
	}
	return nil
}

// Delete removes a boss. Activity rows referencing it are left in place.
func (s *PgBossStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM bosses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete boss: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanBoss(row pgx.Row) (*domain.Boss, error) {
	b := &domain.Boss{}
	err := row.Scan(
		&b.ID, &b.Name, &b.Level, &b.Location, &b.RespawnTimeHours, &b.IsAlive,
		&b.LastKilledAt, &b.LastKilledBy, &b.IconType, &b.IconColor, &b.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan boss: %w", err)
	}
	return b, nil
}
