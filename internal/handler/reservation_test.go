package handler

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestCombineDateTime(t *testing.T) {
    got, err := combineDateTime("2025-06-12", "18:30")
    require.NoError(t, err)
    assert.Equal(t, time.Date(2025, 6, 12, 18, 30, 0, 0, time.UTC), got)

    // Seconds are accepted and dropped, like the TIME columns.
    got, err = combineDateTime("2025-06-12", "18:30:45")
    require.NoError(t, err)
    assert.Equal(t, time.Date(2025, 6, 12, 18, 30, 0, 0, time.UTC), got)
}

func TestCombineDateTimeRejectsGarbage(t *testing.T) {
    cases := [][2]string{
        {"12/06/2025", "18:30"},
        {"2025-06-12", "25:00"},
        {"2025-06-12", ""},
        {"", "18:30"},
    }
    for _, c := range cases {
        _, err := combineDateTime(c[0], c[1])
        assert.Error(t, err, "date %q time %q", c[0], c[1])
    }
}

func TestParseStartLayouts(t *testing.T) {
    want := time.Date(2025, 6, 12, 18, 30, 0, 0, time.UTC)
    for _, s := range []string{
        "2025-06-12T18:30:00",
        "2025-06-12 18:30:00",
        "2025-06-12T18:30",
        "2025-06-12 18:30",
    } {
        got, err := parseStart(s)
        require.NoError(t, err, s)
        assert.Equal(t, want, got, s)
    }

    _, err := parseStart("2025-06-12T18:30:00Z")
    assert.Error(t, err, "timezone designators are not part of the wire format")
}
