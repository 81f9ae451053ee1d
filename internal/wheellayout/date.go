package wheellayout

import (
	"fmt"
	"time"

	"github.com/mark3labs/wheelr/internal/wheel"
)

// DateConfig bounds a date picker. A zero Start means 1900-01-01 and a zero
// End means today.
type DateConfig struct {
	Start, End time.Time

	YearDescription  string
	MonthDescription string
	DayDescription   string
	Formatter        Formatter // Shared by all three columns
}

// DateWheel links year, month and day columns so each only offers dates
// inside the configured bounds.
type DateWheel struct {
	Year, Month, Day *OneWheel
	ascending        bool

	startYear, endYear int
	monthStart         int
	monthEnd           int
	dayStart           int
	dayEnd             int

	now func() time.Time
}

// NewDateWheel links the three columns. ascending orders the columns
// year-month-day; otherwise day-month-year.
func NewDateWheel(year, month, day *OneWheel, ascending bool) *DateWheel {
	d := &DateWheel{Year: year, Month: month, Day: day, ascending: ascending, now: time.Now}
	year.Engine().AddScrollingListener(wheel.ScrollFuncs{
		Finished: func(*wheel.Engine) { d.adjustMonthDay() },
	})
	month.Engine().AddScrollingListener(wheel.ScrollFuncs{
		Finished: func(*wheel.Engine) { d.adjustDay() },
	})
	return d
}

// Columns returns the columns left to right.
func (d *DateWheel) Columns() []*OneWheel {
	if d.ascending {
		return []*OneWheel{d.Year, d.Month, d.Day}
	}
	return []*OneWheel{d.Day, d.Month, d.Year}
}

// SetConfig applies the bounds and resets every column's range.
func (d *DateWheel) SetConfig(c DateConfig) error {
	start, end := c.Start, c.End
	if start.IsZero() {
		start = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.Local)
	}
	if end.IsZero() {
		end = d.now()
	}
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if dateAfter(sy, int(sm), sd, ey, int(em), ed) {
		return fmt.Errorf("start %s is after end %s", start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	d.startYear, d.monthStart, d.dayStart = sy, int(sm), sd
	d.endYear, d.monthEnd, d.dayEnd = ey, int(em), ed

	d.Year.SetConfig(AdapterKey{Min: sy, Max: ey}.WithDescription(c.YearDescription, c.Formatter))
	d.Month.SetConfig(d.monthKey(sy).WithDescription(c.MonthDescription, c.Formatter))
	d.Day.SetConfig(d.dayKey(sy, d.monthStart).WithDescription(c.DayDescription, c.Formatter))
	return nil
}

func dateAfter(y1, m1, d1, y2, m2, d2 int) bool {
	if y1 != y2 {
		return y1 > y2
	}
	if m1 != m2 {
		return m1 > m2
	}
	return d1 > d2
}

func (d *DateWheel) monthKey(year int) AdapterKey {
	switch {
	case year == d.startYear:
		// A range that spans a single year ends at the end month.
		hi := 12
		if year == d.endYear {
			hi = d.monthEnd
		}
		return AdapterKey{Min: d.monthStart, Max: hi, Cyclic: d.monthStart == 1 && hi == 12}
	case year < d.endYear:
		return AdapterKey{Min: 1, Max: 12, Cyclic: true}
	default:
		return AdapterKey{Min: 1, Max: d.monthEnd, Cyclic: d.monthEnd == 12}
	}
}

func (d *DateWheel) dayKey(year, month int) AdapterKey {
	days := DaysIn(year, month)
	atStart := year == d.startYear && month == d.monthStart
	atEnd := year == d.endYear && month == d.monthEnd
	switch {
	case atStart:
		hi := days
		if atEnd {
			hi = d.dayEnd
		}
		return AdapterKey{Min: d.dayStart, Max: hi, Cyclic: d.dayStart == 1 && hi == days}
	case atEnd:
		return AdapterKey{Min: 1, Max: d.dayEnd, Cyclic: d.dayEnd == days}
	default:
		return AdapterKey{Min: 1, Max: days, Cyclic: true}
	}
}

// DaysIn returns the number of days in month of year.
func DaysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && year%100 != 0 || year%400 == 0 {
			return 29
		}
		return 28
	}
	return 0
}

func (d *DateWheel) adjustMonthDay() {
	year := d.Year.Value()
	k := d.monthKey(year)
	d.Month.SetAdapterKey(&k)
	d.adjustDay()
}

func (d *DateWheel) adjustDay() {
	year, month := d.Year.Value(), d.Month.Value()
	k := d.dayKey(year, month)
	d.Day.SetAdapterKey(&k)
}

// Date returns the selected date, clamped through the linked ranges.
func (d *DateWheel) Date() (year, month, day int) {
	year = d.Year.Value()
	mk := d.monthKey(year)
	month = d.Month.ValueIn(&mk)
	dk := d.dayKey(year, month)
	day = d.Day.ValueIn(&dk)
	return year, month, day
}

// SetDate moves to the given date, clamping each part to what the bounds
// allow.
func (d *DateWheel) SetDate(year, month, day int) {
	d.Year.SetValue(year)
	d.adjustMonthDay()
	d.Month.SetValue(month)
	d.adjustDay()
	d.Day.SetValue(day)
}
