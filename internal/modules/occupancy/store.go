// README: Stores and sinks the reconciler depends on.
package occupancy

import (
	"context"

	"smartpark/internal/modules/booking"
	"smartpark/internal/modules/spot"
	"smartpark/internal/types"
)

type SpotRepository interface {
	ListAll(ctx context.Context) ([]spot.Spot, error)
	SetDerivedStatus(ctx context.Context, id types.ID, status spot.Status, preserveMaintenance bool) (bool, error)
}

type BookingLister interface {
	ListBySpot(ctx context.Context, spotID types.ID, excluded []booking.Status) ([]booking.Booking, error)
}

// Publisher receives status change events. It may be nil.
type Publisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}
