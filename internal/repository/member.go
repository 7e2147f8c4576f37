package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/legionhq/legion-tracker/internal/domain"
)

// PgMemberStore implements MemberStore using pgx.
type PgMemberStore struct {
	db DBTX
}

// NewPgMemberStore creates a new PgMemberStore.
func NewPgMemberStore(db DBTX) *PgMemberStore {
	return &PgMemberStore{db: db}
}

const memberColumns = `id, name, password_hash, level, class, power, dkp, role, status, joined_at`

// List returns all members ordered by name ascending.
func (s *PgMemberStore) List(ctx context.Context) ([]domain.Member, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+memberColumns+` FROM members ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

// Get returns a member by ID, or nil if not found.
func (s *PgMemberStore) Get(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM members WHERE id = $1`, id)
	m, err := scanMember(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return m, err
}

// GetByName returns a member by display name, case-insensitive, or nil.
// Used for login, so it also finds the reserved admin identity.
func (s *PgMemberStore) GetByName(ctx context.Context, name string) (*domain.Member, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM members WHERE LOWER(name) = LOWER($1)`, name)
	m, err := scanMember(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return m, err
}

// Create inserts a new member.
func (s *PgMemberStore) Create(ctx context.Context, member *domain.Member) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO members (id, name, password_hash, level, class, power, dkp, role, status, joined_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		member.ID, member.Name, member.PasswordHash, member.Level, member.Class,
		member.Power, member.DKP, member.Role, member.Status, member.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of an existing member.
func (s *PgMemberStore) Update(ctx context.Context, member *domain.Member) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE members SET
		 name = $2, password_hash = $3, level = $4, class = $5, power = $6,
		 dkp = $7, role = $8, status = $9
		 WHERE id = $1`,
		member.ID, member.Name, member.PasswordHash, member.Level, member.Class,
		member.Power, member.DKP, member.Role, member.Status,
	)
	if err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound("member", member.ID.String())
	}
	return nil
}

// Delete removes a member. Returns false if the id was absent.
func (s *PgMemberStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete member: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	m := &domain.Member{}
	err := row.Scan(
		&m.ID, &m.Name, &m.PasswordHash, &m.Level, &m.Class,
		&m.Power, &m.DKP, &m.Role, &m.Status, &m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan member: %w", err)
	}
	return m, nil
}
