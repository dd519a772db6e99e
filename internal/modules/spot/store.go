// README: Spot store backed by PostgreSQL.
package spot

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

func (s *Store) Get(ctx context.Context, id types.ID) (*Spot, error) {
	var sp Spot
	err := s.db.QueryRow(ctx, `
        SELECT id, name, zone_id, status, vertices
        FROM spots
        WHERE id = $1`, string(id),
	).Scan(&sp.ID, &sp.Name, &sp.ZoneID, &sp.Status, &sp.Vertices)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

func (s *Store) ListAll(ctx context.Context) ([]Spot, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, name, zone_id, status, vertices
        FROM spots
        ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Spot
	for rows.Next() {
		var sp Spot
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.ZoneID, &sp.Status, &sp.Vertices); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (s *Store) CountByZone(ctx context.Context, zoneID types.ID) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM spots WHERE zone_id = $1`, string(zoneID)).Scan(&n)
	return n, err
}

func (s *Store) SetStatus(ctx context.Context, id types.ID, status Status) error {
	tag, err := s.db.Exec(ctx, `
        UPDATE spots SET status = $1, updated_at = NOW()
        WHERE id = $2`, string(status), string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetDerivedStatus writes a reconciler-derived status. With preserveMaintenance the
// update only matches rows not Under Maintenance; the bool reports whether a row changed.
func (s *Store) SetDerivedStatus(ctx context.Context, id types.ID, status Status, preserveMaintenance bool) (bool, error) {
	tag, err := s.db.Exec(ctx, `
        UPDATE spots SET status = $1, updated_at = NOW()
        WHERE id = $2 AND (NOT $3 OR status <> $4)`,
		string(status), string(id), preserveMaintenance, string(StatusUnderMaintenance),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
