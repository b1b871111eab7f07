package utils

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
    hash, err := HashPassword("hunter2", 4)
    require.NoError(t, err)
    assert.NotEqual(t, "hunter2", hash)

    assert.True(t, VerifyPassword(hash, "hunter2"))
    assert.False(t, VerifyPassword(hash, "hunter3"))
    assert.False(t, VerifyPassword("not-a-hash", "hunter2"))
}
