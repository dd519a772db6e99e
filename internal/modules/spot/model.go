// README: Parking spot and its occupancy status.
package spot

import (
	"errors"

	"smartpark/internal/types"
)

type Status string

const (
	StatusAvailable        Status = "Available"
	StatusReserved         Status = "Reserved"
	StatusOccupied         Status = "Occupied"
	StatusUnderMaintenance Status = "Under Maintenance"
)

var (
	ErrNotFound      = errors.New("spot not found")
	ErrInvalidStatus = errors.New("invalid spot status")
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusOccupied, StatusUnderMaintenance:
		return true
	}
	return false
}

// Derived reports whether the status is produced by the reconciler from bookings.
// Under Maintenance is operator-set.
func (s Status) Derived() bool {
	return s == StatusAvailable || s == StatusReserved || s == StatusOccupied
}

type Spot struct {
	ID       types.ID    `json:"id"`
	Name     string      `json:"name"`
	ZoneID   types.ID    `json:"zoneId"`
	Status   Status      `json:"status"`
	Vertices [][]float64 `json:"vertices"`
}
