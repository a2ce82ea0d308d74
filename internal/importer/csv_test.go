package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/ptr/internal/domain"
)

func TestReadWeeks_BasicRow(t *testing.T) {
	res, err := ReadWeeks(strings.NewReader("01/07/2024,8,8,8,8,8\n"))
	require.NoError(t, err)
	require.Empty(t, res.Warnings)
	require.Len(t, res.Weeks, 1)

	sunday := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	week, ok := res.Weeks[sunday]
	require.True(t, ok)
	assert.Equal(t, 40*60, week.TotalMinutes())
	assert.Equal(t, domain.WorkdayHours{}, week[0], "Sunday padded to zero")
}

func TestReadWeeks_EmptyCellMeansEightHours(t *testing.T) {
	res, err := ReadWeeks(strings.NewReader("01/07/2024,,4,,8,\n"))
	require.NoError(t, err)
	require.Len(t, res.Weeks, 1)

	week := res.Weeks[time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)]
	assert.Equal(t, 8, week[1].FullHours, "Monday defaults")
	assert.Equal(t, 4, week[2].FullHours, "Tuesday explicit")
	assert.Equal(t, 8, week[5].FullHours, "Friday defaults")
}

func TestReadWeeks_QuarterHours(t *testing.T) {
	res, err := ReadWeeks(strings.NewReader("01/07/2024,7.75,8,8,8,8\n"))
	require.NoError(t, err)
	week := res.Weeks[time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)]
	assert.Equal(t, domain.WorkdayHours{FullHours: 7, QuarterUnits: 3}, week[1])
}

func TestReadWeeks_SkipsBadRowsAndKeepsGoing(t *testing.T) {
	in := strings.Join([]string{
		"01/07/2024,8,8,8,8,8",
		"not-a-date,8,8,8,8,8",
		"01/08/2024,8,8,8,8,8", // a Monday
		"01/14/2024,8,8,8,8",   // five fields only
		"01/14/2024,8,8.3,8,8,8", // not a quarter hour
		"01/21/2024,8,8,8,8,8",
	}, "\n") + "\n"

	res, err := ReadWeeks(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, res.Weeks, 2)
	assert.Len(t, res.Warnings, 4)
	assert.Contains(t, res.Weeks, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, res.Weeks, time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC))
}

func TestReadWeeks_Empty(t *testing.T) {
	res, err := ReadWeeks(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, res.Weeks)
}
