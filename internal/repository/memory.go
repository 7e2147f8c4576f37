package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/legionhq/legion-tracker/internal/domain"
)

// NewMemoryStore wires map-backed stores sharing one mutex. Used for tests and
// for running the server without a database (STORAGE=memory).
func NewMemoryStore() *Store {
	s := &memoryState{
		bosses:        make(map[uuid.UUID]domain.Boss),
		members:       make(map[uuid.UUID]domain.Member),
		notifications: make(map[uuid.UUID]domain.Notification),
	}
	return &Store{
		Bosses:        &memBossStore{state: s},
		Members:       &memMemberStore{state: s},
		Activities:    &memActivityStore{state: s},
		Notifications: &memNotificationStore{state: s},
	}
}

// memoryState is shared by the four stores; the maps are touched by concurrent
// request goroutines.
type memoryState struct {
	mu            sync.RWMutex
	bosses        map[uuid.UUID]domain.Boss
	members       map[uuid.UUID]domain.Member
	activities    []domain.Activity
	notifications map[uuid.UUID]domain.Notification
}

type memBossStore struct {
	state *memoryState
}

func (s *memBossStore) List(ctx context.Context) ([]domain.Boss, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	bosses := make([]domain.Boss, 0, len(s.state.bosses))
	for _, b := range s.state.bosses {
		bosses = append(bosses, b)
	}
	sort.Slice(bosses, func(i, j int) bool { return bosses[i].Name < bosses[j].Name })
	return bosses, nil
}

func (s *memBossStore) Get(ctx context.Context, id uuid.UUID) (*domain.Boss, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	b, ok := s.state.bosses[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (s *memBossStore) Create(ctx context.Context, boss *domain.Boss) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	s.state.bosses[boss.ID] = *boss
	return nil
}

func (s *memBossStore) Update(ctx context.Context, boss *domain.Boss) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.bosses[boss.ID]; !ok {
		return domain.ErrNotFound("boss", boss.ID.String())
	}
	s.state.bosses[boss.ID] = *boss
	return nil
}

func (s *memBossStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.bosses[id]; !ok {
		return false, nil
	}
	delete(s.state.bosses, id)
	return true, nil
}

type memMemberStore struct {
	state *memoryState
}

func (s *memMemberStore) List(ctx context.Context) ([]domain.Member, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	members := make([]domain.Member, 0, len(s.state.members))
	for _, m := range s.state.members {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members, nil
}

func (s *memMemberStore) Get(ctx context.Context, id uuid.UUID) (*domain.Member, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	m, ok := s.state.members[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (s *memMemberStore) GetByName(ctx context.Context, name string) (*domain.Member, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	for _, m := range s.state.members {
		if strings.EqualFold(m.Name, name) {
			found := m
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memMemberStore) Create(ctx context.Context, member *domain.Member) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	s.state.members[member.ID] = *member
	return nil
}

func (s *memMemberStore) Update(ctx context.Context, member *domain.Member) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.members[member.ID]; !ok {
		return domain.ErrNotFound("member", member.ID.String())
	}
	s.state.members[member.ID] = *member
	return nil
}

func (s *memMemberStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.members[id]; !ok {
		return false, nil
	}
	delete(s.state.members, id)
	return true, nil
}

type memActivityStore struct {
	state *memoryState
}

func (s *memActivityStore) List(ctx context.Context, limit int) ([]domain.Activity, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	activities := make([]domain.Activity, len(s.state.activities))
	copy(activities, s.state.activities)
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

func (s *memActivityStore) Create(ctx context.Context, activity *domain.Activity) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	s.state.activities = append(s.state.activities, *activity)
	return nil
}

type memNotificationStore struct {
	state *memoryState
}

func (s *memNotificationStore) GetActive(ctx context.Context) (*domain.Notification, error) {
	s.state.mu.RLock()
	defer s.state.mu.RUnlock()

	var newest *domain.Notification
	for id := range s.state.notifications {
		n := s.state.notifications[id]
		if !n.IsActive {
			continue
		}
		if newest == nil || n.CreatedAt.After(newest.CreatedAt) {
			found := n
			newest = &found
		}
	}
	return newest, nil
}

func (s *memNotificationStore) Create(ctx context.Context, notification *domain.Notification) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	s.state.notifications[notification.ID] = *notification
	return nil
}

func (s *memNotificationStore) DeactivateAll(ctx context.Context) error {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for id, n := range s.state.notifications {
		n.IsActive = false
		s.state.notifications[id] = n
	}
	return nil
}
