package alerts

import (
	"time"

	"github.com/Pauuvl/JOBY/internal/types"
)

const day = 24 * time.Hour

// ShouldSend reports whether the alert frequency allows sending at now.
func ShouldSend(pref types.AlertPreference, now time.Time) bool {
	if !pref.Enabled {
		return false
	}

	switch pref.Frequency {
	case types.FrequencyInstant:
		return true
	case types.FrequencyDaily:
		return elapsedSince(pref.LastAlertSent, now, day)
	case types.FrequencyWeekly:
		return elapsedSince(pref.LastAlertSent, now, 7*day)
	default:
		return false
	}
}

func elapsedSince(last *time.Time, now time.Time, period time.Duration) bool {
	return last == nil || now.Sub(*last) >= period
}

// RecentSince returns the time after which a posting counts as new.
func RecentSince(pref types.AlertPreference, now time.Time, lookback time.Duration) time.Time {
	if pref.LastAlertSent != nil {
		return *pref.LastAlertSent
	}
	return now.Add(-lookback)
}
