package service

import (
	"context"
	"testing"
	"time"

	"github.com/legionhq/legion-tracker/internal/auth"
	"github.com/legionhq/legion-tracker/internal/domain"
	"github.com/legionhq/legion-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, *MemberService, *auth.JWTManager) {
	t.Helper()
	store := repository.NewMemoryStore()
	jwtMgr := auth.NewJWTManager("test-secret-that-is-long-enough-123", time.Hour)
	members := NewMemberService(store.Members, store.Activities, testAdminName, testLogger())
	return NewAuthService(store.Members, jwtMgr, testAdminName), members, jwtMgr
}

func TestLogin(t *testing.T) {
	authSvc, members, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := members.Register(ctx, validMemberInput("Alice"))
	require.NoError(t, err)

	result, err := authSvc.Login(ctx, LoginInput{Name: "Alice", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Alice", result.Member.Name)
}

func TestLoginNameIsCaseInsensitive(t *testing.T) {
	authSvc, members, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := members.Register(ctx, validMemberInput("Alice"))
	require.NoError(t, err)

	result, err := authSvc.Login(ctx, LoginInput{Name: "aLiCe", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", result.Member.Name)
}

func TestLoginInvalidCredentials(t *testing.T) {
	authSvc, members, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := members.Register(ctx, validMemberInput("Alice"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		input LoginInput
	}{
		{"wrong password", LoginInput{Name: "Alice", Password: "wrong"}},
		{"unknown member", LoginInput{Name: "Bob", Password: "hunter2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authSvc.Login(context.Background(), tt.input)
			require.Error(t, err)
			appErr, ok := err.(*domain.AppError)
			require.True(t, ok)
			assert.Equal(t, "UNAUTHORIZED", appErr.Code)
		})
	}

	_, err = authSvc.Login(ctx, LoginInput{Name: "", Password: ""})
	require.Error(t, err)
	appErr, ok := err.(*domain.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestLoginTokenClaims(t *testing.T) {
	authSvc, members, jwtMgr := newAuthFixture(t)
	ctx := context.Background()

	regular, err := members.Register(ctx, validMemberInput("Alice"))
	require.NoError(t, err)

	result, err := authSvc.Login(ctx, LoginInput{Name: "Alice", Password: "hunter2"})
	require.NoError(t, err)

	claims, err := jwtMgr.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, regular.ID.String(), claims.Subject)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, domain.RoleMember, claims.Role)
	assert.False(t, claims.Admin)
	assert.False(t, claims.Privileged())
}

func TestLoginAdminGetsAdminClaim(t *testing.T) {
	authSvc, members, jwtMgr := newAuthFixture(t)
	ctx := context.Background()

	_, err := members.Register(ctx, validMemberInput(testAdminName))
	require.NoError(t, err)

	result, err := authSvc.Login(ctx, LoginInput{Name: "kurama", Password: "hunter2"})
	require.NoError(t, err)

	claims, err := jwtMgr.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
	assert.True(t, claims.Privileged(), "admin is privileged regardless of role")
}
