// README: Zone service; read access for handlers and pricing.
package zone

import (
	"context"

	"smartpark/internal/types"
)

// Reader is satisfied by both Store and MongoStore.
type Reader interface {
	Get(ctx context.Context, id types.ID) (*Zone, error)
}

type Service struct {
	store Reader
}

func NewService(store Reader) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Zone, error) {
	if id.Empty() {
		return nil, ErrNotFound
	}
	return s.store.Get(ctx, id)
}
