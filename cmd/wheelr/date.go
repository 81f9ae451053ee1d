package main

import (
	"fmt"
	"time"

	"github.com/mark3labs/wheelr/internal/state"
	"github.com/mark3labs/wheelr/internal/tui"
	"github.com/mark3labs/wheelr/internal/wheellayout"
	"github.com/spf13/cobra"
)

var dateFlags struct {
	start   string
	end     string
	value   string
	name    string
	reverse bool
}

var dateCmd = &cobra.Command{
	Use:   "date",
	Short: "Pick a calendar date",
	Long: `Pick a date on linked year, month and day wheels.

Months and days only offer what lies between --start and --end, and the day
wheel follows the length of the selected month. Dates use YYYY-MM-DD; the
default range is 1900-01-01 to today and the default value is --end.`,
	Example: `  wheelr date --start 2024-01-01 --end 2024-12-31
  wheelr date --value 1990-06-15 --reverse --name birthday`,
	RunE: runDate,
}

func init() {
	dateCmd.Flags().StringVar(&dateFlags.start, "start", "", "Earliest date (default: 1900-01-01)")
	dateCmd.Flags().StringVar(&dateFlags.end, "end", "", "Latest date (default: today)")
	dateCmd.Flags().StringVarP(&dateFlags.value, "value", "v", "", "Initial date (default: --end)")
	dateCmd.Flags().StringVarP(&dateFlags.name, "name", "n", "date", "Picker name for remembered values and the journal")
	dateCmd.Flags().BoolVarP(&dateFlags.reverse, "reverse", "r", false, "Order wheels day, month, year")
}

// parseDate parses YYYY-MM-DD; empty input yields the zero time.
func parseDate(flag, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: expected YYYY-MM-DD, got %q", flag, s)
	}
	return t, nil
}

func runDate(cmd *cobra.Command, args []string) error {
	start, err := parseDate("start", dateFlags.start)
	if err != nil {
		return err
	}
	end, err := parseDate("end", dateFlags.end)
	if err != nil {
		return err
	}
	value, err := parseDate("value", dateFlags.value)
	if err != nil {
		return err
	}
	e, err := loadEnv()
	if err != nil {
		return err
	}

	yearPane := tui.NewPane("year", e.opts)
	monthPane := tui.NewPane("month", e.opts)
	dayPane := tui.NewPane("day", e.opts)
	dw := wheellayout.NewDateWheel(
		wheellayout.NewOneWheel(yearPane.Engine(), yearPane.Views()),
		wheellayout.NewOneWheel(monthPane.Engine(), monthPane.Views()),
		wheellayout.NewOneWheel(dayPane.Engine(), dayPane.Views()),
		!dateFlags.reverse,
	)
	twoDigits := wheellayout.FormatterFunc(func(_, v int) string { return fmt.Sprintf("%02d", v) })
	if err := dw.SetConfig(wheellayout.DateConfig{Start: start, End: end, Formatter: twoDigits}); err != nil {
		return err
	}

	panes := []*tui.Pane{yearPane, monthPane, dayPane}
	if dateFlags.reverse {
		panes = []*tui.Pane{dayPane, monthPane, yearPane}
	}

	valueSet := !value.IsZero()
	if !valueSet {
		value = end
		if value.IsZero() {
			value = time.Now()
		}
	}
	dw.SetDate(value.Year(), int(value.Month()), value.Day())

	return e.run(cmd, picker{
		name:  dateFlags.name,
		title: dateFlags.name,
		panes: panes,
		values: func() []int {
			y, m, d := dw.Date()
			return []int{y, m, d}
		},
		text: func() string {
			y, m, d := dw.Date()
			return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
		},
		restore: func(s state.Selection) {
			if len(s.Values) == 3 {
				dw.SetDate(s.Values[0], s.Values[1], s.Values[2])
			}
		},
	}, !valueSet)
}
