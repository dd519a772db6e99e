// README: Spot service; operator maintenance toggling and lookups.
package spot

import (
	"context"
	"log"

	"smartpark/internal/types"
)

// Repository is satisfied by both Store and MongoStore.
type Repository interface {
	Get(ctx context.Context, id types.ID) (*Spot, error)
	ListAll(ctx context.Context) ([]Spot, error)
	CountByZone(ctx context.Context, zoneID types.ID) (int64, error)
	SetStatus(ctx context.Context, id types.ID, status Status) error
	SetDerivedStatus(ctx context.Context, id types.ID, status Status, preserveMaintenance bool) (bool, error)
}

type Service struct {
	store Repository
}

func NewService(store Repository) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Spot, error) {
	if id.Empty() {
		return nil, ErrNotFound
	}
	return s.store.Get(ctx, id)
}

// SetMaintenance flags a spot Under Maintenance, or releases it as Available.
// A released spot is re-derived from bookings on the next reconciliation cycle.
func (s *Service) SetMaintenance(ctx context.Context, id types.ID, enabled bool) (*Spot, error) {
	sp, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next := StatusAvailable
	if enabled {
		next = StatusUnderMaintenance
	} else if sp.Status != StatusUnderMaintenance {
		return sp, nil
	}
	if sp.Status == next {
		return sp, nil
	}
	if err := s.store.SetStatus(ctx, id, next); err != nil {
		return nil, err
	}
	log.Printf("spot: %s status %s -> %s (operator)", id, sp.Status, next)
	sp.Status = next
	return sp, nil
}
