package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity type tags. The column is an open string enum: clients may record
// additional tags (e.g. dkp_change) through the generic create endpoint.
const (
	ActivityBossKilled   = "boss_killed"
	ActivityBossSpawned  = "boss_spawned"
	ActivityBossAdded    = "boss_added"
	ActivityBossRemoved  = "boss_removed"
	ActivityMemberJoined = "member_joined"
	ActivityMemberLeft   = "member_left"
	ActivityDKPChange    = "dkp_change"
)

// Activity represents an activities row. Rows are append-only; boss/member
// references may dangle after the referenced entity is deleted.
type Activity struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	BossID      *uuid.UUID `json:"bossId"`
	MemberID    *uuid.UUID `json:"memberId"`
	Timestamp   time.Time  `json:"timestamp"`
}

// ActivityInput holds the recordable activity fields.
type ActivityInput struct {
	Type        string     `json:"type"`
	Description string     `json:"description"`
	BossID      *uuid.UUID `json:"bossId"`
	MemberID    *uuid.UUID `json:"memberId"`
}
