package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/legionhq/legion-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReplacesActiveNotification(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewNotificationService(store.Notifications)
	ctx := context.Background()
	author := uuid.New()

	first, err := svc.Publish(ctx, domain.NotificationInput{
		Title: "War tonight", Message: "Everyone online at 21:00", CreatedBy: author,
	})
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	second, err := svc.Publish(ctx, domain.NotificationInput{
		Title: "War moved", Message: "New time 22:00", CreatedBy: author,
	})
	require.NoError(t, err)

	// Exactly one active notification survives: the second.
	active, err := svc.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)
	assert.Equal(t, "War moved", active.Title)
}

func TestClearDeactivatesEverything(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewNotificationService(store.Notifications)
	ctx := context.Background()

	_, err := svc.Publish(ctx, domain.NotificationInput{
		Title: "War tonight", Message: "21:00", CreatedBy: uuid.New(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))

	active, err := svc.GetActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestGetActiveWhenNonePublished(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewNotificationService(store.Notifications)

	active, err := svc.GetActive(context.Background())
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestPublishValidation(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewNotificationService(store.Notifications)
	ctx := context.Background()

	_, err := svc.Publish(ctx, domain.NotificationInput{Message: "no title", CreatedBy: uuid.New()})
	require.Error(t, err)

	_, err = svc.Publish(ctx, domain.NotificationInput{Title: "no message", CreatedBy: uuid.New()})
	require.Error(t, err)

	// A rejected publish must not deactivate the current broadcast.
	valid, err := svc.Publish(ctx, domain.NotificationInput{
		Title: "ok", Message: "ok", CreatedBy: uuid.New(),
	})
	require.NoError(t, err)
	_, err = svc.Publish(ctx, domain.NotificationInput{Message: "still no title", CreatedBy: uuid.New()})
	require.Error(t, err)

	active, err := svc.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, valid.ID, active.ID)
}
