package service

import (
	"context"
	"strings"
	"time"

	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/legionhq/legion-tracker/internal/repository"
	"github.com/legionhq/legion-tracker/internal/respawn"
)

// StatsService computes the dashboard summary. Boss counts use the derived
// huntable predicate, not the stored flag, so a dead boss whose timer has
// elapsed already counts as alive here.
type StatsService struct {
	bosses    repository.BossStore
	members   repository.MemberStore
	adminName string
}

// NewStatsService creates a new StatsService.
func NewStatsService(bosses repository.BossStore, members repository.MemberStore, adminName string) *StatsService {
	return &StatsService{bosses: bosses, members: members, adminName: adminName}
}

// DashboardStats is the summary payload for the SPA dashboard.
type DashboardStats struct {
	TotalBosses    int `json:"totalBosses"`
	AliveBosses    int `json:"aliveBosses"`
	DeadBosses     int `json:"deadBosses"`
	UpcomingSpawns int `json:"upcomingSpawns"`
	TotalMembers   int `json:"totalMembers"`
	OnlineMembers  int `json:"onlineMembers"`
}

// Dashboard derives the summary counts as of now.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	bosses, err := s.bosses.List(ctx)
	if err != nil {
		return nil, domain.ErrInternal("list bosses", err)
	}
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, domain.ErrInternal("list members", err)
	}

	now := time.Now().UTC()
	stats := &DashboardStats{TotalBosses: len(bosses)}
	for _, b := range bosses {
		if respawn.EffectiveAlive(b.IsAlive, b.LastKilledAt, b.RespawnTimeHours, now) {
			stats.AliveBosses++
		} else {
			stats.DeadBosses++
		}
		if !b.IsAlive && respawn.Upcoming(b.LastKilledAt, b.RespawnTimeHours, now) {
			stats.UpcomingSpawns++
		}
	}

	for _, m := range members {
		if strings.EqualFold(m.Name, s.adminName) {
			continue
		}
		stats.TotalMembers++
		if m.Status == domain.StatusOnline {
			stats.OnlineMembers++
		}
	}

	return stats, nil
}
