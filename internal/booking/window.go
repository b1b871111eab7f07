package booking

import (
    "time"

    "github.com/iliyamo/food-table-reservation/internal/model"
)

// ResolveWindow turns a food place's daily open/close pair into the
// concrete operating window for the given calendar date.  The open
// instant is always on the candidate date.  When the close time of day
// is earlier than the open time the window crosses midnight and the
// close instant falls on the following day, so a place open 18:00-02:00
// resolves to [date 18:00, date+1 02:00).  For any valid pair the
// returned open instant precedes the close instant.  The function is
// pure and has no error conditions.
func ResolveWindow(open, close model.TimeOfDay, date time.Time) (time.Time, time.Time) {
    openAt := open.At(date)
    if close.Before(open) {
        return openAt, close.At(date.AddDate(0, 0, 1))
    }
    return openAt, close.At(date)
}
