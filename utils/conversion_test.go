package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"07:30", 450},
		{"12:00", 720},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseClockRejectsBadInput(t *testing.T) {
	for _, in := range []string{"", "abc", "24:00", "10:60", "-1:30"} {
		_, err := ParseClock(in)
		assert.Error(t, err, in)
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 30, 450, 720, 1439} {
		clock := FormatClock(minutes)
		back, err := ParseClock(clock)
		require.NoError(t, err)
		assert.Equal(t, minutes, back)
	}
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 50.0, RoundMoney(50.004))
	assert.Equal(t, 50.01, RoundMoney(50.012))
	assert.Equal(t, 33.33, RoundMoney(100.0/3))
	assert.Equal(t, 150.0, RoundMoney(100*1.5))
}
