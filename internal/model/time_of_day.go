package model

import (
    "database/sql/driver"
    "encoding/json"
    "fmt"
    "time"
)

// TimeOfDay is a wall-clock time without a date, stored as minutes since
// midnight.  It maps to a MySQL TIME column and is used for food place
// opening hours.  Values are naive: no timezone is attached, matching the
// clock of the food place itself.
type TimeOfDay int

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" into a TimeOfDay.  Seconds
// are accepted for compatibility with the TIME column format but are
// discarded; opening hours have minute granularity.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
    t, err := time.Parse("15:04:05", s)
    if err != nil {
        t, err = time.Parse("15:04", s)
    }
    if err != nil {
        return 0, fmt.Errorf("invalid time of day %q", s)
    }
    return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// Hour returns the hour component in [0, 23].
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component in [0, 59].
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool { return t < other }

// At anchors the time of day onto the given calendar date and returns the
// resulting instant.  The date's own clock portion is ignored.
func (t TimeOfDay) At(date time.Time) time.Time {
    return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// String formats the value as "HH:MM:SS" to match the TIME column format.
func (t TimeOfDay) String() string {
    return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute())
}

// Scan implements sql.Scanner so a TIME column can be read directly into a
// TimeOfDay.  MySQL returns TIME values as []byte.
func (t *TimeOfDay) Scan(src interface{}) error {
    switch v := src.(type) {
    case []byte:
        parsed, err := ParseTimeOfDay(string(v))
        if err != nil {
            return err
        }
        *t = parsed
        return nil
    case string:
        parsed, err := ParseTimeOfDay(v)
        if err != nil {
            return err
        }
        *t = parsed
        return nil
    }
    return fmt.Errorf("cannot scan %T into TimeOfDay", src)
}

// Value implements driver.Valuer for writing a TIME column.
func (t TimeOfDay) Value() (driver.Value, error) { return t.String(), nil }

// MarshalJSON renders the value as a "HH:MM:SS" string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

// UnmarshalJSON accepts "HH:MM" or "HH:MM:SS" strings.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
    var s string
    if err := json.Unmarshal(data, &s); err != nil {
        return err
    }
    parsed, err := ParseTimeOfDay(s)
    if err != nil {
        return err
    }
    *t = parsed
    return nil
}
