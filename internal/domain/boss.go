package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default display metadata applied when a boss is created without icons.
const (
	DefaultIconType  = "dragon"
	DefaultIconColor = "red"
)

// Boss represents a bosses row. The stored IsAlive flag only reflects the last
// explicit kill/revive action; whether a boss is currently huntable is derived
// at read time from LastKilledAt + RespawnTimeHours (see the respawn package).
type Boss struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Level            int        `json:"level"`
	Location         string     `json:"location"`
	RespawnTimeHours float64    `json:"respawnTimeHours"`
	IsAlive          bool       `json:"isAlive"`
	LastKilledAt     *time.Time `json:"lastKilledAt"`
	LastKilledBy     *string    `json:"lastKilledBy"`
	IconType         string     `json:"iconType"`
	IconColor        string     `json:"iconColor"`
	ImageURL         *string    `json:"imageUrl"`
}

// BossInput holds the creatable boss fields.
type BossInput struct {
	Name             string  `json:"name"`
	Level            int     `json:"level"`
	Location         string  `json:"location"`
	RespawnTimeHours float64 `json:"respawnTimeHours"`
	IconType         string  `json:"iconType"`
	IconColor        string  `json:"iconColor"`
	ImageURL         *string `json:"imageUrl"`
}

// BossPatch holds the optional fields of a boss update. Nil means "leave as is".
type BossPatch struct {
	Name             *string  `json:"name"`
	Level            *int     `json:"level"`
	Location         *string  `json:"location"`
	RespawnTimeHours *float64 `json:"respawnTimeHours"`
	IconType         *string  `json:"iconType"`
	IconColor        *string  `json:"iconColor"`
	ImageURL         *string  `json:"imageUrl"`
}
