// README: Periodic spot status reconciler.
package occupancy

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"smartpark/internal/modules/booking"
	"smartpark/internal/modules/spot"
)

var tracer = otel.Tracer("smartpark/occupancy")

type Config struct {
	Interval time.Duration
	// PreserveMaintenance leaves Under Maintenance spots untouched. When false the
	// derived status overwrites the maintenance flag on the next cycle.
	PreserveMaintenance bool
}

type Service struct {
	spots     SpotRepository
	bookings  BookingLister
	publisher Publisher
	cfg       Config
	now       func() time.Time
}

func NewService(spots SpotRepository, bookings BookingLister, publisher Publisher, cfg Config) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	return &Service{
		spots:     spots,
		bookings:  bookings,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// RunScheduler runs a cycle immediately and then every Interval until ctx is done.
// Cycles never overlap.
func (s *Service) RunScheduler(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	s.RunCycle(ctx, s.now())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunCycle(ctx, s.now())
		}
	}
}

// RunCycle reconciles every spot against its bookings at now. A failing spot is
// logged and skipped; a failed listing aborts the cycle.
func (s *Service) RunCycle(ctx context.Context, now time.Time) CycleReport {
	ctx, span := tracer.Start(ctx, "occupancy.RunCycle")
	defer span.End()

	var rep CycleReport
	spots, err := s.spots.ListAll(ctx)
	if err != nil {
		log.Printf("occupancy: list spots: %v", err)
		span.RecordError(err)
		rep.Aborted = true
		return rep
	}
	rep.Spots = len(spots)

	for _, sp := range spots {
		if ctx.Err() != nil {
			break
		}
		if s.cfg.PreserveMaintenance && sp.Status == spot.StatusUnderMaintenance {
			rep.Skipped++
			continue
		}
		bookings, err := s.bookings.ListBySpot(ctx, sp.ID, booking.NonContributing)
		if err != nil {
			log.Printf("occupancy: spot %s: list bookings: %v", sp.ID, err)
			rep.Failed++
			continue
		}
		next := Classify(bookings, now)
		if next == sp.Status {
			rep.Unchanged++
			continue
		}
		changed, err := s.spots.SetDerivedStatus(ctx, sp.ID, next, s.cfg.PreserveMaintenance)
		if err != nil {
			log.Printf("occupancy: spot %s: set status %s: %v", sp.ID, next, err)
			rep.Failed++
			continue
		}
		if !changed {
			// Flagged for maintenance (or removed) since the listing.
			rep.Skipped++
			continue
		}
		rep.Updated++
		if sp.Status == spot.StatusUnderMaintenance {
			log.Printf("occupancy: spot %s maintenance flag overwritten with %s", sp.ID, next)
		}
		s.publish(ctx, StatusChanged{SpotID: sp.ID, ZoneID: sp.ZoneID, From: sp.Status, To: next, At: now})
	}

	span.SetAttributes(
		attribute.Int("spots", rep.Spots),
		attribute.Int("updated", rep.Updated),
		attribute.Int("failed", rep.Failed),
	)
	return rep
}

func (s *Service) publish(ctx context.Context, ev StatusChanged) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishJSON(ctx, EventStatusChanged, ev); err != nil {
		log.Printf("occupancy: publish %s for spot %s: %v", EventStatusChanged, ev.SpotID, err)
	}
}
