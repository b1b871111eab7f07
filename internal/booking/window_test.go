package booking

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/food-table-reservation/internal/model"
)

func mustTimeOfDay(t *testing.T, s string) model.TimeOfDay {
    t.Helper()
    v, err := model.ParseTimeOfDay(s)
    require.NoError(t, err)
    return v
}

func TestResolveWindowSameDay(t *testing.T) {
    open := mustTimeOfDay(t, "10:00")
    close := mustTimeOfDay(t, "22:00")
    date := time.Date(2025, 6, 12, 15, 30, 0, 0, time.UTC)

    openAt, closeAt := ResolveWindow(open, close, date)

    assert.Equal(t, time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC), openAt)
    assert.Equal(t, time.Date(2025, 6, 12, 22, 0, 0, 0, time.UTC), closeAt)
}

func TestResolveWindowCrossesMidnight(t *testing.T) {
    open := mustTimeOfDay(t, "18:00")
    close := mustTimeOfDay(t, "02:00")
    date := time.Date(2025, 6, 12, 23, 0, 0, 0, time.UTC)

    openAt, closeAt := ResolveWindow(open, close, date)

    assert.Equal(t, time.Date(2025, 6, 12, 18, 0, 0, 0, time.UTC), openAt)
    assert.Equal(t, time.Date(2025, 6, 13, 2, 0, 0, 0, time.UTC), closeAt)
}

func TestResolveWindowMonthBoundary(t *testing.T) {
    open := mustTimeOfDay(t, "20:00")
    close := mustTimeOfDay(t, "01:30")
    date := time.Date(2025, 1, 31, 21, 0, 0, 0, time.UTC)

    openAt, closeAt := ResolveWindow(open, close, date)

    assert.Equal(t, time.Date(2025, 1, 31, 20, 0, 0, 0, time.UTC), openAt)
    assert.Equal(t, time.Date(2025, 2, 1, 1, 30, 0, 0, time.UTC), closeAt)
}

func TestResolveWindowOpenPrecedesClose(t *testing.T) {
    date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
    pairs := [][2]string{
        {"00:00", "23:59"},
        {"09:30", "17:00"},
        {"18:00", "02:00"},
        {"23:00", "22:59"},
    }
    for _, p := range pairs {
        openAt, closeAt := ResolveWindow(mustTimeOfDay(t, p[0]), mustTimeOfDay(t, p[1]), date)
        assert.True(t, openAt.Before(closeAt), "window %s-%s must be non-empty", p[0], p[1])
    }
}

func TestResolveWindowNearFullDay(t *testing.T) {
    // 23:00-22:59 is the widest rollover a pair of clock values can
    // express; the close must land at 22:59 on the following day.
    open := mustTimeOfDay(t, "23:00")
    close := mustTimeOfDay(t, "22:59")
    date := time.Date(2025, 3, 1, 23, 30, 0, 0, time.UTC)

    openAt, closeAt := ResolveWindow(open, close, date)

    assert.Equal(t, time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC), openAt)
    assert.Equal(t, time.Date(2025, 3, 2, 22, 59, 0, 0, time.UTC), closeAt)
}
