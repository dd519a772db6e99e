// README: Parking zone read model.
package zone

import (
	"errors"

	"smartpark/internal/types"
)

var ErrNotFound = errors.New("zone not found")

type Zone struct {
	ID          types.ID `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	// PricePerHour is an operator override; quotes always use the fixed rate table.
	PricePerHour *int64      `json:"pricePerHour,omitempty"`
	Vertices     [][]float64 `json:"vertices"`
}
