package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Validator Tests ---

func TestValidateBossInput(t *testing.T) {
	valid := BossInput{
		Name:             "QUIMERA",
		Level:            38,
		Location:         "MAPA 6",
		RespawnTimeHours: 2,
	}

	t.Run("valid input", func(t *testing.T) {
		require.NoError(t, ValidateBossInput(valid))
	})

	tests := []struct {
		name   string
		mutate func(*BossInput)
		errMsg string
	}{
		{"missing name", func(in *BossInput) { in.Name = "" }, "name is required"},
		{"zero level", func(in *BossInput) { in.Level = 0 }, "level must be positive"},
		{"negative level", func(in *BossInput) { in.Level = -5 }, "level must be positive"},
		{"missing location", func(in *BossInput) { in.Location = "" }, "location is required"},
		{"zero respawn", func(in *BossInput) { in.RespawnTimeHours = 0 }, "respawn time must be positive"},
		{"negative respawn", func(in *BossInput) { in.RespawnTimeHours = -1.5 }, "respawn time must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := ValidateBossInput(in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateMemberInput(t *testing.T) {
	valid := MemberInput{
		Name:     "Alice",
		Password: "hunter2",
		Level:    50,
		Class:    ClassWarrior,
		Power:    1000,
	}

	t.Run("valid input", func(t *testing.T) {
		require.NoError(t, ValidateMemberInput(valid))
	})

	t.Run("optional role and status accepted", func(t *testing.T) {
		in := valid
		in.Role = RoleViceLeader
		in.Status = StatusOnline
		require.NoError(t, ValidateMemberInput(in))
	})

	tests := []struct {
		name   string
		mutate func(*MemberInput)
		errMsg string
	}{
		{"missing name", func(in *MemberInput) { in.Name = "" }, "name is required"},
		{"short password", func(in *MemberInput) { in.Password = "abc" }, "at least 4 characters"},
		{"zero level", func(in *MemberInput) { in.Level = 0 }, "level must be positive"},
		{"unknown class", func(in *MemberInput) { in.Class = "NINJA" }, "invalid class"},
		{"negative power", func(in *MemberInput) { in.Power = -1 }, "must not be negative"},
		{"unknown role", func(in *MemberInput) { in.Role = "Rei" }, "invalid role"},
		{"unknown status", func(in *MemberInput) { in.Status = "busy" }, "invalid status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := ValidateMemberInput(in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateRole(t *testing.T) {
	tests := []struct {
		role    string
		wantErr bool
	}{
		{RoleLeader, false},
		{RoleViceLeader, false},
		{RoleMember, false},
		{"", true},
		{"Rei", true},
		{"líder", true}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			err := ValidateRole(tt.role)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateStatus(t *testing.T) {
	tests := []struct {
		status  string
		wantErr bool
	}{
		{StatusOnline, false},
		{StatusOffline, false},
		{StatusAway, false},
		{"", true},
		{"busy", true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			err := ValidateStatus(tt.status)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateNotificationInput(t *testing.T) {
	require.NoError(t, ValidateNotificationInput(NotificationInput{Title: "War", Message: "21:00"}))

	err := ValidateNotificationInput(NotificationInput{Message: "21:00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")

	err = ValidateNotificationInput(NotificationInput{Title: "War"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message is required")
}

func TestValidateActivityInput(t *testing.T) {
	require.NoError(t, ValidateActivityInput(ActivityInput{Type: ActivityDKPChange, Description: "Alice +50 DKP"}))

	err := ValidateActivityInput(ActivityInput{Description: "no type"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type is required")

	err = ValidateActivityInput(ActivityInput{Type: ActivityDKPChange})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description is required")
}

// --- AppError Tests ---

func TestAppError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := ErrNotFound("boss", "abc-123")
		assert.Equal(t, "NOT_FOUND: boss abc-123 not found", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := ErrInternal("database error", cause)
		assert.Contains(t, err.Error(), "INTERNAL_ERROR")
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := ErrInternal("wrapped", cause)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestErrorFactories(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"ErrNotFound", ErrNotFound("boss", "123"), "NOT_FOUND", 404},
		{"ErrConflict", ErrConflict("already exists"), "CONFLICT", 409},
		{"ErrValidation", ErrValidation("bad input"), "VALIDATION_ERROR", 400},
		{"ErrUnauthorized", ErrUnauthorized("no token"), "UNAUTHORIZED", 401},
		{"ErrForbidden", ErrForbidden("not allowed"), "FORBIDDEN", 403},
		{"ErrInternal", ErrInternal("oops", nil), "INTERNAL_ERROR", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}
