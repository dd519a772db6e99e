// README: Collaborator stores pricing reads from; implemented by the zone, spot and booking stores.
package pricing

import (
	"context"
	"time"

	"smartpark/internal/modules/booking"
	"smartpark/internal/modules/zone"
	"smartpark/internal/types"
)

type ZoneReader interface {
	Get(ctx context.Context, id types.ID) (*zone.Zone, error)
}

type SpotCounter interface {
	CountByZone(ctx context.Context, zoneID types.ID) (int64, error)
}

type BookingHistory interface {
	CountInWindow(ctx context.Context, zoneID types.ID, from, to time.Time, statuses []booking.Status) (int64, error)
	ListCreatedBetween(ctx context.Context, zoneID types.ID, from, to time.Time, statuses []booking.Status) ([]booking.Booking, error)
}
