package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDays(hours ...int) []WorkdayHours {
	out := make([]WorkdayHours, len(hours))
	for i, h := range hours {
		out[i] = WorkdayHours{FullHours: h}
	}
	return out
}

func TestExpandWeek_FiveDayInput(t *testing.T) {
	week, err := ExpandWeek(fullDays(8, 8, 8, 8, 8))
	require.NoError(t, err)

	assert.Equal(t, WorkdayHours{}, week[0], "Sunday defaults to zero")
	assert.Equal(t, WorkdayHours{}, week[6], "Saturday defaults to zero")
	for i := 1; i <= 5; i++ {
		assert.Equal(t, WorkdayHours{FullHours: 8}, week[i])
	}
	assert.Equal(t, 40*60, week.TotalMinutes())
}

func TestExpandWeek_SevenDayIdentity(t *testing.T) {
	in := fullDays(0, 8, 8, 4, 8, 8, 0)
	week, err := ExpandWeek(in)
	require.NoError(t, err)
	for i, v := range in {
		assert.Equal(t, v, week[i])
	}
}

func TestExpandWeek_RejectsOtherLengths(t *testing.T) {
	for _, n := range []int{0, 1, 4, 6, 8} {
		_, err := ExpandWeek(make([]WorkdayHours, n))
		assert.ErrorIs(t, err, ErrBadWeekLength, "length %d", n)
	}
}

func TestDefaultWeek(t *testing.T) {
	week := DefaultWeek()
	assert.Equal(t, 0, week[0].Minutes())
	assert.Equal(t, 0, week[6].Minutes())
	assert.Equal(t, 40*60, week.TotalMinutes())
}

func TestSundayFor(t *testing.T) {
	// 2024-01-07 is a Sunday.
	sunday := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, sunday, SundayFor(sunday), "a Sunday maps to itself")

	for i := 1; i <= 6; i++ {
		d := sunday.AddDate(0, 0, i)
		assert.Equal(t, sunday, SundayFor(d), "weekday offset %d", i)
	}
	assert.True(t, IsSunday(SundayFor(time.Date(2024, 3, 14, 13, 45, 0, 0, time.Local))))
}

func TestDateOf_NormalizesLocation(t *testing.T) {
	loc := time.FixedZone("CST", -6*3600)
	a := DateOf(time.Date(2024, 5, 1, 23, 30, 0, 0, loc))
	b := DateOf(time.Date(2024, 5, 1, 0, 5, 0, 0, time.UTC))
	assert.Equal(t, a, b)
}
