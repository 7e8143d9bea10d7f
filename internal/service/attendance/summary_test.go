package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthRange(t *testing.T) {
	start, end := monthRange(2024, 2)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)

	// December rolls into the next year
	start, end = monthRange(2023, 12)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestCountWeekdays(t *testing.T) {
	cases := []struct {
		year  int
		month int
		want  int
	}{
		{2024, 2, 21}, // leap February, 29 days
		{2024, 4, 22}, // starts on a Monday
		{2024, 6, 20}, // starts on a Saturday
		{2023, 12, 21},
	}
	for _, c := range cases {
		start, end := monthRange(c.year, c.month)
		got := countWeekdays(start, end)
		assert.Equal(t, c.want, got, "weekdays in %d-%02d", c.year, c.month)
	}
}

func TestCountWeekdaysEmptyRange(t *testing.T) {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, countWeekdays(start, start))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 7.67, round2(7.6666666))
	assert.Equal(t, 8.0, round2(8.0))
	assert.Equal(t, 0.0, round2(0))
}
