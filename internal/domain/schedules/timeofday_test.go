package schedules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	valid := map[string]int{
		"00:00": 0,
		"09:30": 570,
		"23:59": 1439,
		" 7:05": 425,
	}
	for in, want := range valid {
		got, ok := ParseClock(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "12", "24:00", "12:60", "ab:cd", "-1:00", "12:5x"} {
		_, ok := ParseClock(in)
		assert.False(t, ok, in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "23:59", FormatClock(1439))
	assert.Equal(t, "00:10", FormatClock(1450))
}

func TestWindowContains(t *testing.T) {
	day := window{start: 540, end: 1020}
	assert.True(t, day.contains(540))
	assert.False(t, day.contains(1020))

	night := window{start: 1320, end: 120}
	assert.True(t, night.overnight())
	assert.True(t, night.contains(1320))
	assert.True(t, night.contains(0))
	assert.True(t, night.contains(119))
	assert.False(t, night.contains(120))
	assert.False(t, night.contains(720))

	empty := window{start: 600, end: 600}
	assert.False(t, empty.overnight())
	assert.False(t, empty.contains(600))
}
