package booking

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"

    "github.com/iliyamo/food-table-reservation/internal/model"
)

func at(h, m int) time.Time {
    return time.Date(2025, 6, 12, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
    cases := []struct {
        name           string
        s1, e1, s2, e2 time.Time
        want           bool
    }{
        {"identical", at(18, 0), at(19, 0), at(18, 0), at(19, 0), true},
        {"contained", at(18, 0), at(20, 0), at(18, 30), at(19, 0), true},
        {"partial front", at(18, 0), at(19, 0), at(18, 30), at(19, 30), true},
        {"partial back", at(18, 30), at(19, 30), at(18, 0), at(19, 0), true},
        {"touching end to start", at(18, 0), at(19, 0), at(19, 0), at(20, 0), false},
        {"touching start to end", at(19, 0), at(20, 0), at(18, 0), at(19, 0), false},
        {"disjoint", at(10, 0), at(11, 0), at(15, 0), at(16, 0), false},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            assert.Equal(t, tc.want, Overlaps(tc.s1, tc.e1, tc.s2, tc.e2))
            // overlap is symmetric in the two intervals
            assert.Equal(t, tc.want, Overlaps(tc.s2, tc.e2, tc.s1, tc.e1))
        })
    }
}

func TestHasConflictSkipsInactive(t *testing.T) {
    existing := []model.Reservation{
        {ID: 1, StartTime: at(18, 0), DurationMinutes: 60, IsActive: false},
    }
    assert.False(t, HasConflict(at(18, 0), at(19, 0), 0, existing))

    existing[0].IsActive = true
    assert.True(t, HasConflict(at(18, 0), at(19, 0), 0, existing))
}

func TestHasConflictExcludesSelf(t *testing.T) {
    existing := []model.Reservation{
        {ID: 7, StartTime: at(18, 0), DurationMinutes: 90, IsActive: true},
    }
    // A reservation never conflicts with itself when re-validated.
    assert.False(t, HasConflict(at(18, 30), at(19, 30), 7, existing))
    // Any other identity still sees the clash.
    assert.True(t, HasConflict(at(18, 30), at(19, 30), 0, existing))
}

func TestHasConflictBackToBack(t *testing.T) {
    existing := []model.Reservation{
        {ID: 1, StartTime: at(18, 0), DurationMinutes: 60, IsActive: true},
        {ID: 2, StartTime: at(20, 0), DurationMinutes: 60, IsActive: true},
    }
    // The hour between the two bookings is free, including both edges.
    assert.False(t, HasConflict(at(19, 0), at(20, 0), 0, existing))
    // One minute earlier clips the first booking.
    assert.True(t, HasConflict(at(18, 59), at(19, 59), 0, existing))
}
