package domain

import "fmt"

var validClasses = map[string]bool{
	ClassArcher:  true,
	ClassWarrior: true,
	ClassMage:    true,
}

var validRoles = map[string]bool{
	RoleLeader:     true,
	RoleViceLeader: true,
	RoleMember:     true,
}

var validStatuses = map[string]bool{
	StatusOnline:  true,
	StatusOffline: true,
	StatusAway:    true,
}

// ValidateBossInput checks boss create payloads. Runs before any write, so a
// rejected payload produces no side effects.
func ValidateBossInput(in BossInput) error {
	if in.Name == "" {
		return fmt.Errorf("boss name is required")
	}
	if in.Level <= 0 {
		return fmt.Errorf("boss level must be positive, got %d", in.Level)
	}
	if in.Location == "" {
		return fmt.Errorf("boss location is required")
	}
	if in.RespawnTimeHours <= 0 {
		return fmt.Errorf("respawn time must be positive, got %g", in.RespawnTimeHours)
	}
	return nil
}

// ValidateMemberInput checks member registration payloads.
func ValidateMemberInput(in MemberInput) error {
	if in.Name == "" {
		return fmt.Errorf("member name is required")
	}
	if len(in.Password) < 4 {
		return fmt.Errorf("password must be at least 4 characters")
	}
	if in.Level <= 0 {
		return fmt.Errorf("member level must be positive, got %d", in.Level)
	}
	if !validClasses[in.Class] {
		return fmt.Errorf("invalid class: %s", in.Class)
	}
	if in.Power < 0 {
		return fmt.Errorf("power must not be negative, got %g", in.Power)
	}
	if in.Role != "" && !validRoles[in.Role] {
		return fmt.Errorf("invalid role: %s", in.Role)
	}
	if in.Status != "" && !validStatuses[in.Status] {
		return fmt.Errorf("invalid status: %s", in.Status)
	}
	return nil
}

// ValidateRole checks a role value on privileged updates.
func ValidateRole(role string) error {
	if !validRoles[role] {
		return fmt.Errorf("invalid role: %s", role)
	}
	return nil
}

// ValidateStatus checks a presence status value.
func ValidateStatus(status string) error {
	if !validStatuses[status] {
		return fmt.Errorf("invalid status: %s", status)
	}
	return nil
}

// ValidateNotificationInput checks broadcast payloads.
func ValidateNotificationInput(in NotificationInput) error {
	if in.Title == "" {
		return fmt.Errorf("notification title is required")
	}
	if in.Message == "" {
		return fmt.Errorf("notification message is required")
	}
	return nil
}

// ValidateActivityInput checks generic activity payloads.
func ValidateActivityInput(in ActivityInput) error {
	if in.Type == "" {
		return fmt.Errorf("activity type is required")
	}
	if in.Description == "" {
		return fmt.Errorf("activity description is required")
	}
	return nil
}
