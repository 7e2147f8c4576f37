package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBossStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	t.Run("get missing returns nil", func(t *testing.T) {
		boss, err := store.Bosses.Get(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, boss)
	})

	t.Run("list is name ordered", func(t *testing.T) {
		for _, name := range []string{"LYTHEA", "QUIMERA", "BRIARE"} {
			err := store.Bosses.Create(ctx, &domain.Boss{
				ID: uuid.New(), Name: name, Level: 50, Location: "MAPA 1",
				RespawnTimeHours: 2, IsAlive: true,
			})
			require.NoError(t, err)
		}

		bosses, err := store.Bosses.List(ctx)
		require.NoError(t, err)
		require.Len(t, bosses, 3)
		assert.Equal(t, "BRIARE", bosses[0].Name)
		assert.Equal(t, "LYTHEA", bosses[1].Name)
		assert.Equal(t, "QUIMERA", bosses[2].Name)
	})

	t.Run("update missing returns not found", func(t *testing.T) {
		err := store.Bosses.Update(ctx, &domain.Boss{ID: uuid.New(), Name: "GHOST"})
		require.Error(t, err)
		appErr, ok := err.(*domain.AppError)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
	})

	t.Run("delete reports existence", func(t *testing.T) {
		boss := &domain.Boss{ID: uuid.New(), Name: "OSTIAR", Level: 98, Location: "MAPA 22", RespawnTimeHours: 1}
		require.NoError(t, store.Bosses.Create(ctx, boss))

		deleted, err := store.Bosses.Delete(ctx, boss.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = store.Bosses.Delete(ctx, boss.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestMemoryMemberGetByName(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Members.Create(ctx, &domain.Member{
		ID: uuid.New(), Name: "Alice", Level: 50, Class: domain.ClassMage,
		Role: domain.RoleMember, Status: domain.StatusOffline, JoinedAt: time.Now(),
	})
	require.NoError(t, err)

	for _, name := range []string{"Alice", "alice", "ALICE", "aLiCe"} {
		member, err := store.Members.GetByName(ctx, name)
		require.NoError(t, err)
		require.NotNil(t, member, "lookup %q", name)
		assert.Equal(t, "Alice", member.Name)
	}

	member, err := store.Members.GetByName(ctx, "Bob")
	require.NoError(t, err)
	assert.Nil(t, member)
}

func TestMemoryActivityOrderingAndLimit(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		err := store.Activities.Create(ctx, &domain.Activity{
			ID:          uuid.New(),
			Type:        domain.ActivityBossKilled,
			Description: "kill",
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	activities, err := store.Activities.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, activities, 5)
	for i := 1; i < len(activities); i++ {
		assert.True(t, activities[i-1].Timestamp.After(activities[i].Timestamp), "newest first")
	}

	limited, err := store.Activities.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, activities[0].ID, limited[0].ID)
}

func TestMemoryNotificationSingleActive(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := &domain.Notification{
		ID: uuid.New(), Title: "one", Message: "m", CreatedAt: time.Now().UTC(), IsActive: true,
	}
	require.NoError(t, store.Notifications.Create(ctx, first))

	require.NoError(t, store.Notifications.DeactivateAll(ctx))
	second := &domain.Notification{
		ID: uuid.New(), Title: "two", Message: "m", CreatedAt: time.Now().UTC().Add(time.Second), IsActive: true,
	}
	require.NoError(t, store.Notifications.Create(ctx, second))

	active, err := store.Notifications.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)

	require.NoError(t, store.Notifications.DeactivateAll(ctx))
	active, err = store.Notifications.GetActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)
}
