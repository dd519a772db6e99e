// README: Booking read model consumed by pricing and the spot status reconciler.
package booking

import (
	"time"

	"smartpark/internal/types"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

// NonContributing statuses never count towards spot occupancy.
var NonContributing = []Status{StatusCancelled, StatusPending}

// Fulfilled statuses count as historical demand.
var Fulfilled = []Status{StatusConfirmed, StatusCompleted}

type Booking struct {
	ID          types.ID  `json:"id"`
	UserID      types.ID  `json:"userId"`
	NumberPlate string    `json:"numberPlate"`
	SpotID      types.ID  `json:"spotId"`
	ZoneID      types.ID  `json:"zoneId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      Status    `json:"status"`
	Amount      int64     `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (b Booking) Contributes() bool {
	for _, s := range NonContributing {
		if b.Status == s {
			return false
		}
	}
	return true
}

// ActiveAt is inclusive at both ends.
func (b Booking) ActiveAt(now time.Time) bool {
	return !b.StartTime.After(now) && !b.EndTime.Before(now)
}

func (b Booking) UpcomingAt(now time.Time) bool {
	return b.StartTime.After(now)
}

func statusStrings(ss []Status) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return out
}
