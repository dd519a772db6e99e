// README: Zone store backed by PostgreSQL.
package zone

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smartpark/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Zone, error) {
	var z Zone
	err := s.db.QueryRow(ctx, `
        SELECT id, name, description, price_per_hour, vertices
        FROM zones
        WHERE id = $1`, string(id),
	).Scan(&z.ID, &z.Name, &z.Description, &z.PricePerHour, &z.Vertices)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &z, nil
}
