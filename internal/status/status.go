// Package status derives the user-facing display status of a pole from its
// raw communication state and the age of its last report.
package status

import (
	"time"

	"github.com/polesense/polesense-be/internal/models"
)

// Maintenance marks poles that dropped offline recently enough that a field
// visit is presumed in progress rather than the pole being dead.
const Maintenance = "MAINTENANCE"

// offlineGraceDays is the whole-day threshold below which an offline pole is
// shown as MAINTENANCE.
const offlineGraceDays = 3

// Resolve maps a raw communication status and last update time to the
// display status. ONLINE always wins. An OFFLINE pole that last reported
// fewer than three whole days ago is shown as MAINTENANCE; with no last
// update, or an older one, it stays OFFLINE. Any other raw value passes
// through unchanged. The day difference truncates: 2d23h59m elapsed is
// still 2 days.
func Resolve(communicationStatus string, lastUpdate *time.Time, now time.Time) string {
	switch communicationStatus {
	case models.CommOnline:
		return models.CommOnline
	case models.CommOffline:
		if lastUpdate == nil {
			return models.CommOffline
		}
		if wholeDays(now.Sub(*lastUpdate)) < offlineGraceDays {
			return Maintenance
		}
		return models.CommOffline
	default:
		return communicationStatus
	}
}

// Annotate stamps DisplayStatus on every pole using one shared evaluation
// instant, so all rows in a response are internally consistent.
func Annotate(poles []models.Pole, now time.Time) {
	for i := range poles {
		poles[i].DisplayStatus = Resolve(poles[i].CommunicationStatus, poles[i].UpdateTime, now)
	}
}

func wholeDays(d time.Duration) int {
	return int(d / (24 * time.Hour))
}
