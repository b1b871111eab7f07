package booking

import (
    "time"

    "github.com/iliyamo/food-table-reservation/internal/model"
)

// Overlaps reports whether two half-open intervals [s1, e1) and
// [s2, e2) intersect.  Touching endpoints do not count: an interval
// ending exactly when the other starts leaves both bookable.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
    return s1.Before(e2) && s2.Before(e1)
}

// HasConflict reports whether the candidate interval [start, end)
// collides with any of the given reservations.  Inactive rows and the
// reservation identified by excludeID are skipped; the latter allows an
// existing reservation to be re-validated against its siblings without
// conflicting with itself.  Pass excludeID 0 when creating.
func HasConflict(start, end time.Time, excludeID uint64, existing []model.Reservation) bool {
    for i := range existing {
        r := &existing[i]
        if !r.IsActive || r.ID == excludeID {
            continue
        }
        if Overlaps(start, end, r.StartTime, r.EndTime()) {
            return true
        }
    }
    return false
}
