package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/legionhq/legion-tracker/internal/repository"
)

// BossService owns the boss lifecycle: create, patch, kill, revive, delete.
// Every transition except the generic update appends an activity entry. The
// activity append runs after the primary write commits and is non-fatal: a
// failed append is logged and the mutation result is returned anyway.
type BossService struct {
	bosses     repository.BossStore
	activities repository.ActivityStore
	logger     *slog.Logger
}

// NewBossService creates a new BossService.
func NewBossService(bosses repository.BossStore, activities repository.ActivityStore, logger *slog.Logger) *BossService {
	return &BossService{bosses: bosses, activities: activities, logger: logger}
}

// List returns all bosses, name ascending.
func (s *BossService) List(ctx context.Context) ([]domain.Boss, error) {
	bosses, err := s.bosses.List(ctx)
	if err != nil {
		return nil, domain.ErrInternal("list bosses", err)
	}
	return bosses, nil
}

// Get returns a single boss.
func (s *BossService) Get(ctx context.Context, id uuid.UUID) (*domain.Boss, error) {
	boss, err := s.bosses.Get(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal("find boss", err)
	}
	if boss == nil {
		return nil, domain.ErrNotFound("boss", id.String())
	}
	return boss, nil
}

// Create inserts a new boss, alive by default, and records a boss_added entry.
func (s *BossService) Create(ctx context.Context, in domain.BossInput) (*domain.Boss, error) {
	if err := domain.ValidateBossInput(in); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	boss := &domain.Boss{
		ID:               uuid.New(),
		Name:             in.Name,
		Level:            in.Level,
		Location:         in.Location,
		RespawnTimeHours: in.RespawnTimeHours,
		IsAlive:          true,
		IconType:         in.IconType,
		IconColor:        in.IconColor,
		ImageURL:         in.ImageURL,
	}
	if boss.IconType == "" {
		boss.IconType = domain.DefaultIconType
	}
	if boss.IconColor == "" {
		boss.IconColor = domain.DefaultIconColor
	}

	if err := s.bosses.Create(ctx, boss); err != nil {
		return nil, domain.ErrInternal("create boss", err)
	}

	s.record(ctx, domain.ActivityInput{
		Type:        domain.ActivityBossAdded,
		Description: fmt.Sprintf("%s added to boss list", boss.Name),
		BossID:      &boss.ID,
	})

	return boss, nil
}

// CreateBatch inserts several bosses at once. Every payload is validated
// before the first insert, so a bad entry leaves the store untouched.
func (s *BossService) CreateBatch(ctx context.Context, inputs []domain.BossInput) ([]domain.Boss, error) {
	for i, in := range inputs {
		if err := domain.ValidateBossInput(in); err != nil {
			return nil, domain.ErrValidation(fmt.Sprintf("boss %d: %s", i, err.Error()))
		}
	}

	created := make([]domain.Boss, 0, len(inputs))
	for _, in := range inputs {
		boss, err := s.Create(ctx, in)
		if err != nil {
			return nil, err
		}
		created = append(created, *boss)
	}
	return created, nil
}

// Update patches boss metadata. It deliberately records no activity entry,
// matching the lifecycle transitions' asymmetric side-effect policy: only
// kill/revive/create/delete show up in the history feed.
func (s *BossService) Update(ctx context.Context, id uuid.UUID, patch domain.BossPatch) (*domain.Boss, error) {
	boss, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, domain.ErrValidation("boss name is required")
		}
		boss.Name = *patch.Name
	}
	if patch.Level != nil {
		if *patch.Level <= 0 {
			return nil, domain.ErrValidation(fmt.Sprintf("boss level must be positive, got %d", *patch.Level))
		}
		boss.Level = *patch.Level
	}
	if patch.Location != nil {
		boss.Location = *patch.Location
	}
	if patch.RespawnTimeHours != nil {
		if *patch.RespawnTimeHours <= 0 {
			return nil, domain.ErrValidation(fmt.Sprintf("respawn time must be positive, got %g", *patch.RespawnTimeHours))
		}
		boss.RespawnTimeHours = *patch.RespawnTimeHours
	}
	if patch.IconType != nil {
		boss.IconType = *patch.IconType
	}
	if patch.IconColor != nil {
		boss.IconColor = *patch.IconColor
	}
	if patch.ImageURL != nil {
		boss.ImageURL = patch.ImageURL
	}

	if err := s.bosses.Update(ctx, boss); err != nil {
		return nil, err
	}
	return boss, nil
}

// Kill marks a boss dead as of now. Valid from any state: re-killing an
// already-dead boss simply overwrites the kill timestamp, which is how
// operators correct a mistimed entry.
func (s *BossService) Kill(ctx context.Context, id uuid.UUID, killedBy string) (*domain.Boss, error) {
	boss, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	boss.IsAlive = false
	boss.LastKilledAt = &now
	if killedBy != "" {
		boss.LastKilledBy = &killedBy
	} else {
		boss.LastKilledBy = nil
	}

	if err := s.bosses.Update(ctx, boss); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("%s has been killed", boss.Name)
	if killedBy != "" {
		description = fmt.Sprintf("%s has been killed by %s", boss.Name, killedBy)
	}
	s.record(ctx, domain.ActivityInput{
		Type:        domain.ActivityBossKilled,
		Description: description,
		BossID:      &boss.ID,
	})

	return boss, nil
}

// Revive undoes a kill: the boss is alive again and the timer is cleared.
// Reviving an already-alive boss is a state-level no-op.
func (s *BossService) Revive(ctx context.Context, id uuid.UUID) (*domain.Boss, error) {
	boss, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	boss.IsAlive = true
	boss.LastKilledAt = nil
	boss.LastKilledBy = nil

	if err := s.bosses.Update(ctx, boss); err != nil {
		return nil, err
	}

	s.record(ctx, domain.ActivityInput{
		Type:        domain.ActivityBossSpawned,
		Description: fmt.Sprintf("%s revived (kill reverted)", boss.Name),
		BossID:      &boss.ID,
	})

	return boss, nil
}

// Delete removes a boss. Activity rows referencing it are kept and their boss
// reference dangles from then on.
func (s *BossService) Delete(ctx context.Context, id uuid.UUID) error {
	boss, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.bosses.Delete(ctx, id)
	if err != nil {
		return domain.ErrInternal("delete boss", err)
	}
	if !deleted {
		return domain.ErrNotFound("boss", id.String())
	}

	s.record(ctx, domain.ActivityInput{
		Type:        domain.ActivityBossRemoved,
		Description: fmt.Sprintf("%s removed from boss list", boss.Name),
		BossID:      &boss.ID,
	})

	return nil
}

func (s *BossService) record(ctx context.Context, in domain.ActivityInput) {
	activity := &domain.Activity{
		ID:          uuid.New(),
		Type:        in.Type,
		Description: in.Description,
		BossID:      in.BossID,
		MemberID:    in.MemberID,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.activities.Create(ctx, activity); err != nil {
		s.logger.Warn("activity append failed",
			"type", in.Type,
			"description", in.Description,
			"error", err,
		)
	}
}
