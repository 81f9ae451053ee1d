package wheellayout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func newDate(c *clock, ascending bool) *DateWheel {
	return NewDateWheel(newColumn(c), newColumn(c), newColumn(c), ascending)
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2023, 1, 31},
		{2023, 4, 30},
		{2023, 2, 28},
		{2024, 2, 29},
		{1900, 2, 28},
		{2000, 2, 29},
		{2023, 13, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysIn(tt.year, tt.month), "%d-%02d", tt.year, tt.month)
	}
}

func TestDateWheelBounds(t *testing.T) {
	d := newDate(&clock{}, true)
	require.NoError(t, d.SetConfig(DateConfig{Start: day(2020, time.March, 15), End: day(2021, time.February, 10)}))

	assert.Equal(t, 2020, d.Year.Adapter().Min)
	assert.Equal(t, 2021, d.Year.Adapter().Max)
	assert.Equal(t, 3, d.Month.Adapter().Min)
	assert.False(t, d.Month.Engine().Cyclic())
	assert.Equal(t, 15, d.Day.Adapter().Min)

	y, m, dd := d.Date()
	assert.Equal(t, []int{2020, 3, 15}, []int{y, m, dd})

	d.SetDate(2021, 5, 31)
	y, m, dd = d.Date()
	assert.Equal(t, []int{2021, 2, 10}, []int{y, m, dd})

	d.SetDate(2020, 2, 29)
	y, m, dd = d.Date()
	assert.Equal(t, []int{2020, 3, 29}, []int{y, m, dd})
}

func TestDateWheelLeapDay(t *testing.T) {
	d := newDate(&clock{}, true)
	require.NoError(t, d.SetConfig(DateConfig{Start: day(2000, time.January, 1), End: day(2030, time.December, 31)}))

	d.SetDate(2024, 2, 29)
	y, m, dd := d.Date()
	assert.Equal(t, []int{2024, 2, 29}, []int{y, m, dd})
	assert.True(t, d.Day.Engine().Cyclic())

	d.SetDate(2023, 2, 29)
	y, m, dd = d.Date()
	assert.Equal(t, []int{2023, 2, 28}, []int{y, m, dd})
}

func TestDateWheelFollowsYearScroll(t *testing.T) {
	c := &clock{now: time.Unix(0, 0)}
	d := newDate(c, true)
	require.NoError(t, d.SetConfig(DateConfig{Start: day(2023, time.January, 1), End: day(2024, time.December, 31)}))
	d.SetDate(2024, 2, 29)

	settle(t, c, d.Year, -1)
	assert.Equal(t, 2023, d.Year.Value())
	assert.Equal(t, 28, d.Day.Adapter().Max, "day range follows the year once it settles")
	assert.Equal(t, 28, d.Day.Value())
}

func TestDateWheelFollowsMonthScroll(t *testing.T) {
	c := &clock{now: time.Unix(0, 0)}
	d := newDate(c, true)
	require.NoError(t, d.SetConfig(DateConfig{Start: day(2023, time.January, 1), End: day(2023, time.December, 31)}))
	d.SetDate(2023, 3, 31)

	settle(t, c, d.Month, 1)
	assert.Equal(t, 4, d.Month.Value())
	assert.Equal(t, 30, d.Day.Value())
}

func TestDateWheelSingleYear(t *testing.T) {
	d := newDate(&clock{}, true)
	require.NoError(t, d.SetConfig(DateConfig{Start: day(2024, time.May, 10), End: day(2024, time.May, 20)}))

	assert.Equal(t, 5, d.Month.Adapter().Min)
	assert.Equal(t, 5, d.Month.Adapter().Max)
	assert.Equal(t, 10, d.Day.Adapter().Min)
	assert.Equal(t, 20, d.Day.Adapter().Max)
}

func TestDateWheelDefaults(t *testing.T) {
	d := newDate(&clock{}, false)
	d.now = func() time.Time { return day(2026, time.October, 19) }
	require.NoError(t, d.SetConfig(DateConfig{}))

	assert.Equal(t, 1900, d.Year.Adapter().Min)
	assert.Equal(t, 2026, d.Year.Adapter().Max)
	assert.Equal(t, []*OneWheel{d.Day, d.Month, d.Year}, d.Columns())

	d.SetDate(2026, 12, 25)
	y, m, dd := d.Date()
	assert.Equal(t, []int{2026, 10, 19}, []int{y, m, dd})
}

func TestDateWheelRejectsReversedBounds(t *testing.T) {
	d := newDate(&clock{}, true)
	err := d.SetConfig(DateConfig{Start: day(2024, time.January, 2), End: day(2024, time.January, 1)})
	assert.Error(t, err)
}
