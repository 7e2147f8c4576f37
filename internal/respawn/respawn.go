// Package respawn holds the pure boss timer arithmetic. Nothing here touches
// storage or the clock: callers pass the current time explicitly, and the SPA
// re-derives the same values on its polling interval.
package respawn

import (
	"fmt"
	"time"
)

// UpcomingWindow is the remaining-time window within which a dead boss counts
// as an "upcoming spawn" in summary stats.
const UpcomingWindow = time.Hour

// Duration converts a fractional respawn time in hours to a time.Duration.
func Duration(respawnHours float64) time.Duration {
	return time.Duration(respawnHours * float64(time.Hour))
}

// TimeRemaining returns how long until the boss respawns, never negative.
// A boss that was never killed (nil lastKilledAt) has nothing to wait for.
func TimeRemaining(lastKilledAt *time.Time, respawnHours float64, now time.Time) time.Duration {
	if lastKilledAt == nil {
		return 0
	}
	left := lastKilledAt.Add(Duration(respawnHours)).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// Progress returns the elapsed fraction of the respawn window as a percentage,
// clamped to [0, 100]. 0 when lastKilledAt is nil, exactly 100 once elapsed.
func Progress(lastKilledAt *time.Time, respawnHours float64, now time.Time) float64 {
	if lastKilledAt == nil {
		return 0
	}
	total := Duration(respawnHours)
	if total <= 0 {
		return 100
	}
	elapsed := now.Sub(*lastKilledAt)
	if elapsed >= total {
		return 100
	}
	if elapsed < 0 {
		return 0
	}
	return float64(elapsed) / float64(total) * 100
}

// EffectiveAlive is the display-time "is it huntable" predicate. A boss whose
// timer has elapsed is reported huntable even though the stored flag stays
// false until an explicit revive.
func EffectiveAlive(isAlive bool, lastKilledAt *time.Time, respawnHours float64, now time.Time) bool {
	if isAlive {
		return true
	}
	return TimeRemaining(lastKilledAt, respawnHours, now) <= 0
}

// Upcoming reports whether a dead boss respawns within the next hour. Used for
// summary counts only, never for a state transition.
func Upcoming(lastKilledAt *time.Time, respawnHours float64, now time.Time) bool {
	left := TimeRemaining(lastKilledAt, respawnHours, now)
	return left > 0 && left < UpcomingWindow
}

// FormatRemaining renders a remaining duration as zero-padded HH:MM:SS.
// Hours have no upper bound (no day rollover).
func FormatRemaining(d time.Duration) string {
	if d <= 0 {
		return "00:00:00"
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
