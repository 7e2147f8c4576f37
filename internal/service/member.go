package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/legionhq/legion-tracker/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// MemberService owns the roster. The reserved admin identity (adminName) can
// log in like any member but never appears in listings.
type MemberService struct {
	members    repository.MemberStore
	activities repository.ActivityStore
	adminName  string
	logger     *slog.Logger
}

// NewMemberService creates a new MemberService.
func NewMemberService(members repository.MemberStore, activities repository.ActivityStore, adminName string, logger *slog.Logger) *MemberService {
	return &MemberService{members: members, activities: activities, adminName: adminName, logger: logger}
}

// List returns the roster name-ascending, with the admin identity hidden.
func (s *MemberService) List(ctx context.Context) ([]domain.Member, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, domain.ErrInternal("list members", err)
	}

	visible := make([]domain.Member, 0, len(members))
	for _, m := range members {
		if strings.EqualFold(m.Name, s.adminName) {
			continue
		}
		visible = append(visible, m)
	}
	return visible, nil
}

// Get returns a single member.
func (s *MemberService) Get(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	member, err := s.members.Get(ctx, id)
	if err != nil {
		return nil, domain.ErrInternal("find member", err)
	}
	if member == nil {
		return nil, domain.ErrNotFound("member", id.String())
	}
	return member, nil
}

// Register creates a member, hashing the password, and records member_joined.
func (s *MemberService) Register(ctx context.Context, in domain.MemberInput) (*domain.Member, error) {
	if err := domain.ValidateMemberInput(in); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	existing, err := s.members.GetByName(ctx, in.Name)
	if err != nil {
		return nil, domain.ErrInternal("find member", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict(fmt.Sprintf("member name already taken: %s", in.Name))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.ErrInternal("hash password", err)
	}

	member := &domain.Member{
		ID:           uuid.New(),
		Name:         in.Name,
		PasswordHash: string(hash),
		Level:        in.Level,
		Class:        in.Class,
		Power:        in.Power,
		DKP:          in.DKP,
		Role:         in.Role,
		Status:       in.Status,
		JoinedAt:     time.Now().UTC(),
	}
	if member.Role == "" {
		member.Role = domain.RoleMember
	}
	if member.Status == "" {
		member.Status = domain.StatusOffline
	}

	if err := s.members.Create(ctx, member); err != nil {
		return nil, domain.ErrInternal("create member", err)
	}

	s.record(ctx, domain.ActivityInput{
		Type:        domain.ActivityMemberJoined,
		Description: fmt.Sprintf("%s joined the legion", member.Name),
		MemberID:    &member.ID,
	})

	return member, nil
}

// Update is the privileged patch: any field, including role, DKP, status and
// the credential. Like the boss metadata patch it records no activity entry;
// DKP adjustments show up in the feed through the generic activity endpoint.
func (s *MemberService) Update(ctx context.Context, id uuid.UUID, patch domain.MemberPatch) (*domain.Member, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && !strings.EqualFold(*patch.Name, member.Name) {
		if *patch.Name == "" {
			return nil, domain.ErrValidation("member name is required")
		}
		existing, err := s.members.GetByName(ctx, *patch.Name)
		if err != nil {
			return nil, domain.ErrInternal("find member", err)
		}
		if existing != nil {
			return nil, domain.ErrConflict(fmt.Sprintf("member name already taken: %s", *patch.Name))
		}
		member.Name = *patch.Name
	}
	if patch.Password != nil {
		if len(*patch.Password) < 4 {
			return nil, domain.ErrValidation("password must be at least 4 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, domain.ErrInternal("hash password", err)
		}
		member.PasswordHash = string(hash)
	}
	if patch.Level != nil {
		if *patch.Level <= 0 {
			return nil, domain.ErrValidation(fmt.Sprintf("member level must be positive, got %d", *patch.Level))
		}
		member.Level = *patch.Level
	}
	if patch.Class != nil {
		member.Class = *patch.Class
	}
	if patch.Power != nil {
		member.Power = *patch.Power
	}
	if patch.DKP != nil {
		member.DKP = *patch.DKP
	}
	if patch.Role != nil {
		if err := domain.ValidateRole(*patch.Role); err != nil {
			return nil, domain.ErrValidation(err.Error())
		}
		member.Role = *patch.Role
	}
	if patch.Status != nil {
		if err := domain.ValidateStatus(*patch.Status); err != nil {
			return nil, domain.ErrValidation(err.Error())
		}
		member.Status = *patch.Status
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// UpdateSelf lets a member adjust their own level and power, nothing else.
func (s *MemberService) UpdateSelf(ctx context.Context, name string, patch domain.SelfPatch) (*domain.Member, error) {
	member, err := s.members.GetByName(ctx, name)
	if err != nil {
		return nil, domain.ErrInternal("find member", err)
	}
	if member == nil {
		return nil, domain.ErrNotFound("member", name)
	}

	if patch.Level != nil {
		if *patch.Level <= 0 {
			return nil, domain.ErrValidation(fmt.Sprintf("member level must be positive, got %d", *patch.Level))
		}
		member.Level = *patch.Level
	}
	if patch.Power != nil {
		if *patch.Power < 0 {
			return nil, domain.ErrValidation(fmt.Sprintf("power must not be negative, got %g", *patch.Power))
		}
		member.Power = *patch.Power
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete removes a member and records member_left.
func (s *MemberService) Delete(ctx context.Context, id uuid.UUID) error {
	member, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.members.Delete(ctx, id)
	if err != nil {
		return domain.ErrInternal("delete member", err)
	}
	if !deleted {
		return domain.ErrNotFound("member", id.String())
	}

	s.record(ctx, domain.ActivityInput{
		Type:        domain.ActivityMemberLeft,
		Description: fmt.Sprintf("%s left the legion", member.Name),
		MemberID:    &member.ID,
	})

	return nil
}

func (s *MemberService) record(ctx context.Context, in domain.ActivityInput) {
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
