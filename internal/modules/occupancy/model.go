// README: Spot occupancy derivation from bookings.
package occupancy

import (
	"time"

	"smartpark/internal/modules/booking"
	"smartpark/internal/modules/spot"
	"smartpark/internal/types"
)

// EventStatusChanged is the routing key of StatusChanged events.
const EventStatusChanged = "spot.status_changed"

// Classify derives a spot's status from its bookings at now. A booking active at now
// (inclusive bounds) makes the spot Occupied; otherwise any future booking makes it
// Reserved. Cancelled and Pending bookings are ignored.
func Classify(bookings []booking.Booking, now time.Time) spot.Status {
	reserved := false
	for _, b := range bookings {
		if !b.Contributes() {
			continue
		}
		if b.ActiveAt(now) {
			return spot.StatusOccupied
		}
		if b.UpcomingAt(now) {
			reserved = true
		}
	}
	if reserved {
		return spot.StatusReserved
	}
	return spot.StatusAvailable
}

type StatusChanged struct {
	SpotID types.ID    `json:"spotId"`
	ZoneID types.ID    `json:"zoneId"`
	From   spot.Status `json:"from"`
	To     spot.Status `json:"to"`
	At     time.Time   `json:"at"`
}

// CycleReport summarises one reconciliation pass.
type CycleReport struct {
	Spots     int
	Updated   int
	Unchanged int
	Skipped   int
	Failed    int
	// Aborted is set when the spot listing itself failed and nothing was reconciled.
	Aborted bool
}
