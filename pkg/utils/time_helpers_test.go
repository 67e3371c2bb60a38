package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-05-28 ")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.May, 28), d)

	_, err = ParseDate("28/05/2024")
	assert.Error(t, err)
}

func TestParseOptionalDate(t *testing.T) {
	d, err := ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseOptionalDate("2024-07-15")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2024-07-15", FormatDate(*d))

	_, err = ParseOptionalDate("июль")
	assert.Error(t, err)
}

func TestFormatOptionalDate(t *testing.T) {
	assert.Nil(t, FormatOptionalDate(nil))
	d := date(2024, time.January, 2)
	require.NotNil(t, FormatOptionalDate(&d))
	assert.Equal(t, "2024-01-02", *FormatOptionalDate(&d))
}

func TestDateOnly_KeepsCalendarDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	evening := time.Date(2024, time.May, 28, 22, 30, 0, 0, loc)
	assert.Equal(t, date(2024, time.May, 28), DateOnly(evening))
}

func TestDaysBetween(t *testing.T) {
	ref := date(2024, time.May, 28)
	assert.Equal(t, 0, DaysBetween(ref, ref))
	assert.Equal(t, 48, DaysBetween(ref, date(2024, time.July, 15)))
	assert.Equal(t, -3, DaysBetween(ref, date(2024, time.May, 25)))
	assert.Equal(t, 1, DaysBetween(time.Date(2024, time.May, 28, 23, 59, 0, 0, time.UTC), date(2024, time.May, 29)))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, date(2024, time.March, 1), AddDays(date(2024, time.February, 29), 1))
	assert.Equal(t, date(2024, time.April, 28), AddDays(date(2024, time.May, 28), -30))
}

func TestMonthsBetween(t *testing.T) {
	cases := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"same day", date(2024, time.January, 15), date(2024, time.January, 15), 0},
		{"to before from", date(2024, time.May, 1), date(2024, time.January, 1), 0},
		{"not a full month", date(2024, time.January, 15), date(2024, time.February, 14), 0},
		{"exactly one month", date(2024, time.January, 15), date(2024, time.February, 15), 1},
		{"four full months", date(2024, time.January, 15), date(2024, time.May, 28), 4},
		{"across year", date(2023, time.November, 30), date(2024, time.February, 29), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MonthsBetween(tc.from, tc.to))
		})
	}
}

func TestInDateRange(t *testing.T) {
	from := date(2024, time.May, 1)
	to := date(2024, time.May, 31)

	assert.True(t, InDateRange(date(2024, time.May, 1), &from, &to), "нижняя граница включительно")
	assert.True(t, InDateRange(time.Date(2024, time.May, 31, 18, 0, 0, 0, time.UTC), &from, &to), "верхняя граница включительно")
	assert.False(t, InDateRange(date(2024, time.April, 30), &from, &to))
	assert.False(t, InDateRange(date(2024, time.June, 1), &from, &to))
	assert.True(t, InDateRange(date(1999, time.January, 1), nil, &to))
	assert.True(t, InDateRange(date(2099, time.January, 1), &from, nil))
	assert.True(t, InDateRange(date(2099, time.January, 1), nil, nil))
}

func TestSameMonth(t *testing.T) {
	assert.True(t, SameMonth(date(2024, time.May, 1), date(2024, time.May, 31)))
	assert.False(t, SameMonth(date(2024, time.May, 1), date(2023, time.May, 1)))
	assert.False(t, SameMonth(date(2024, time.May, 31), date(2024, time.June, 1)))
}
