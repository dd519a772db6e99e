// README: Booking store backed by PostgreSQL (read paths only).
package booking

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smartpark/internal/types"
)

// Repository is satisfied by both Store and MongoStore.
type Repository interface {
	ListBySpot(ctx context.Context, spotID types.ID, excluded []Status) ([]Booking, error)
	CountInWindow(ctx context.Context, zoneID types.ID, from, to time.Time, statuses []Status) (int64, error)
	ListCreatedBetween(ctx context.Context, zoneID types.ID, from, to time.Time, statuses []Status) ([]Booking, error)
}

const bookingColumns = `id, user_id, number_plate, spot_id, zone_id, start_time, end_time, status, amount, created_at`

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) ListBySpot(ctx context.Context, spotID types.ID, excluded []Status) ([]Booking, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+bookingColumns+`
        FROM bookings
        WHERE spot_id = $1 AND NOT (status = ANY($2))
        ORDER BY start_time`,
		string(spotID), statusStrings(excluded),
	)
	if err != nil {
		return nil, err
	}
	return scanBookings(rows)
}

// CountInWindow counts bookings fully contained in [from, to].
func (s *Store) CountInWindow(ctx context.Context, zoneID types.ID, from, to time.Time, statuses []Status) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, `
        SELECT COUNT(*)
        FROM bookings
        WHERE zone_id = $1
          AND start_time >= $2
          AND end_time <= $3
          AND status = ANY($4)`,
		string(zoneID), from, to, statusStrings(statuses),
	).Scan(&n)
	return n, err
}

func (s *Store) ListCreatedBetween(ctx context.Context, zoneID types.ID, from, to time.Time, statuses []Status) ([]Booking, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+bookingColumns+`
        FROM bookings
        WHERE zone_id = $1
          AND created_at >= $2
          AND created_at <= $3
          AND status = ANY($4)
        ORDER BY created_at DESC`,
		string(zoneID), from, to, statusStrings(statuses),
	)
	if err != nil {
		return nil, err
	}
	return scanBookings(rows)
}

func scanBookings(rows pgx.Rows) ([]Booking, error) {
	defer rows.Close()
	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.NumberPlate, &b.SpotID, &b.ZoneID,
			&b.StartTime, &b.EndTime, &b.Status, &b.Amount, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
