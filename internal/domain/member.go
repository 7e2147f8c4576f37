package domain

import (
	"time"

	"github.com/google/uuid"
)

// Member classes (fixed by the game client).
const (
	ClassArcher  = "ARQUEIRO"
	ClassWarrior = "GUERREIRO"
	ClassMage    = "MAGO"
)

// Member roles. The system admin is not a role: it is a single reserved member
// name (config) that is hidden from listings and always treated as privileged.
const (
	RoleLeader     = "Líder"
	RoleViceLeader = "Vice Líder"
	RoleMember     = "Membro"
)

// Member presence statuses.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusAway    = "away"
)

// Member represents a members row. PasswordHash is never serialized.
type Member struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Level        int       `json:"level"`
	Class        string    `json:"class"`
	Power        float64   `json:"power"`
	DKP          int       `json:"dkp"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	JoinedAt     time.Time `json:"joinedAt"`
}

// MemberInput holds the creatable member fields. Password arrives in clear text
// and is bcrypt-hashed before storage.
type MemberInput struct {
	Name     string  `json:"name"`
	Password string  `json:"password"`
	Level    int     `json:"level"`
	Class    string  `json:"class"`
	Power    float64 `json:"power"`
	DKP      int     `json:"dkp"`
	Role     string  `json:"role"`
	Status   string  `json:"status"`
}

// MemberPatch holds the optional fields of a privileged member update.
type MemberPatch struct {
	Name     *string  `json:"name"`
	Password *string  `json:"password"`
	Level    *int     `json:"level"`
	Class    *string  `json:"class"`
	Power    *float64 `json:"power"`
	DKP      *int     `json:"dkp"`
	Role     *string  `json:"role"`
	Status   *string  `json:"status"`
}

// SelfPatch holds the fields a member may update on their own record.
type SelfPatch struct {
	Level *int     `json:"level"`
	Power *float64 `json:"power"`
}
