package spot

import (
	"context"
	"errors"
	"testing"

	"smartpark/internal/types"
)

type memRepo struct {
	spots  map[types.ID]*Spot
	writes int
}

func (m *memRepo) Get(_ context.Context, id types.ID) (*Spot, error) {
	sp, ok := m.spots[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *sp
	return &cp, nil
}

func (m *memRepo) ListAll(context.Context) ([]Spot, error) { return nil, nil }

func (m *memRepo) CountByZone(context.Context, types.ID) (int64, error) { return 0, nil }

func (m *memRepo) SetStatus(_ context.Context, id types.ID, status Status) error {
	m.spots[id].Status = status
	m.writes++
	return nil
}

func (m *memRepo) SetDerivedStatus(context.Context, types.ID, Status, bool) (bool, error) {
	return false, nil
}

func TestService_SetMaintenance(t *testing.T) {
	tests := []struct {
		name       string
		from       Status
		enabled    bool
		want       Status
		wantWrites int
	}{
		{"flag available spot", StatusAvailable, true, StatusUnderMaintenance, 1},
		{"flag occupied spot", StatusOccupied, true, StatusUnderMaintenance, 1},
		{"already flagged", StatusUnderMaintenance, true, StatusUnderMaintenance, 0},
		{"release", StatusUnderMaintenance, false, StatusAvailable, 1},
		{"release a spot not under maintenance", StatusReserved, false, StatusReserved, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memRepo{spots: map[types.ID]*Spot{"s1": {ID: "s1", Status: tt.from}}}
			got, err := NewService(repo).SetMaintenance(context.Background(), "s1", tt.enabled)
			if err != nil {
				t.Fatalf("SetMaintenance() error = %v", err)
			}
			if got.Status != tt.want || repo.spots["s1"].Status != tt.want {
				t.Errorf("status = %q (stored %q), want %q", got.Status, repo.spots["s1"].Status, tt.want)
			}
			if repo.writes != tt.wantWrites {
				t.Errorf("writes = %d, want %d", repo.writes, tt.wantWrites)
			}
		})
	}
}

func TestService_Get(t *testing.T) {
	svc := NewService(&memRepo{spots: map[types.ID]*Spot{}})
	if _, err := svc.Get(context.Background(), ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(\"\") error = %v", err)
	}
	if _, err := svc.SetMaintenance(context.Background(), "missing", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetMaintenance(missing) error = %v", err)
	}
}

func TestStatus(t *testing.T) {
	for _, s := range []Status{StatusAvailable, StatusReserved, StatusOccupied} {
		if !s.Valid() || !s.Derived() {
			t.Errorf("%q should be valid and derived", s)
		}
	}
	if !StatusUnderMaintenance.Valid() || StatusUnderMaintenance.Derived() {
		t.Error("Under Maintenance should be valid but operator-set")
	}
	if Status("Broken").Valid() {
		t.Error("unknown status reported valid")
	}
}
