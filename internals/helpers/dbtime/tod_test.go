package dbtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHHMM(t *testing.T) {
	cases := map[string]string{
		"9:05":     "09:05",
		"09:05":    "09:05",
		" 14:30 ":  "14:30",
		"07:45:59": "07:45",
		"0:00":     "00:00",
	}
	for in, want := range cases {
		got, err := NormalizeHHMM(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "25:00", "9", "nine", "12:60"} {
		_, err := NormalizeHHMM(bad)
		assert.Error(t, err, bad)
	}
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2025-06-01"))
	assert.True(t, IsValidDate("2024-02-29"))
	assert.False(t, IsValidDate("2025-02-29"))
	assert.False(t, IsValidDate("2025-6-1"))
	assert.False(t, IsValidDate("01/06/2025"))
}
