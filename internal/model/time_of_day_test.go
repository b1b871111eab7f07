package model

import (
    "encoding/json"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
    v, err := ParseTimeOfDay("18:30")
    require.NoError(t, err)
    assert.Equal(t, 18, v.Hour())
    assert.Equal(t, 30, v.Minute())

    // Seconds are accepted but dropped.
    v, err = ParseTimeOfDay("02:00:59")
    require.NoError(t, err)
    assert.Equal(t, "02:00:00", v.String())

    for _, bad := range []string{"", "25:00", "12:60", "noon", "12"} {
        _, err := ParseTimeOfDay(bad)
        assert.Error(t, err, "input %q", bad)
    }
}

func TestTimeOfDayAt(t *testing.T) {
    v, err := ParseTimeOfDay("18:30")
    require.NoError(t, err)
    date := time.Date(2025, 6, 12, 23, 45, 1, 0, time.UTC)

    // The clock portion of the anchor date is discarded.
    assert.Equal(t, time.Date(2025, 6, 12, 18, 30, 0, 0, time.UTC), v.At(date))
}

func TestTimeOfDayScan(t *testing.T) {
    var v TimeOfDay
    require.NoError(t, v.Scan([]byte("09:15:00")))
    assert.Equal(t, "09:15:00", v.String())

    require.NoError(t, v.Scan("23:00"))
    assert.Equal(t, 23, v.Hour())

    assert.Error(t, v.Scan(42))
}

func TestTimeOfDayJSON(t *testing.T) {
    v, err := ParseTimeOfDay("18:00")
    require.NoError(t, err)

    b, err := json.Marshal(v)
    require.NoError(t, err)
    assert.Equal(t, `"18:00:00"`, string(b))

    var back TimeOfDay
    require.NoError(t, json.Unmarshal([]byte(`"02:30"`), &back))
    assert.Equal(t, "02:30:00", back.String())
}
