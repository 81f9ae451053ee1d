package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/wheelr/internal/state"
	"github.com/mark3labs/wheelr/internal/tui"
	"github.com/mark3labs/wheelr/internal/wheellayout"
	"github.com/spf13/cobra"
)

var pickFlags struct {
	min    int
	max    int
	value  int
	label  string
	format string
	name   string
	cyclic bool
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick an integer from a range",
	Long: `Pick an integer between --min and --max on a single wheel.

The wheel starts at --value, or at the value last accepted under --name when
remembering is enabled. --label is drawn next to the selected row and
--format is a printf verb applied to each row, e.g. %02d.`,
	Example: `  wheelr pick --min 1 --max 60 --label min
  wheelr pick --min 0 --max 23 --format %02d --cyclic --name hour`,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().IntVar(&pickFlags.min, "min", 0, "Smallest value")
	pickCmd.Flags().IntVar(&pickFlags.max, "max", 100, "Largest value")
	pickCmd.Flags().IntVarP(&pickFlags.value, "value", "v", 0, "Initial value (default: --min)")
	pickCmd.Flags().StringVarP(&pickFlags.label, "label", "l", "", "Unit label shown beside the selection")
	pickCmd.Flags().StringVarP(&pickFlags.format, "format", "f", "", "printf format for each row, e.g. %02d")
	pickCmd.Flags().StringVarP(&pickFlags.name, "name", "n", "pick", "Picker name for remembered values and the journal")
	pickCmd.Flags().BoolVarP(&pickFlags.cyclic, "cyclic", "c", false, "Wrap around past either end (default: from config)")
}

// printfFormatter formats row values with a printf verb.
func printfFormatter(format string) (wheellayout.Formatter, error) {
	if format == "" {
		return nil, nil
	}
	if !strings.Contains(format, "%") {
		return nil, fmt.Errorf("format %q has no verb", format)
	}
	return wheellayout.FormatterFunc(func(_, value int) string {
		return fmt.Sprintf(format, value)
	}), nil
}

func runPick(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}
	formatter, err := printfFormatter(pickFlags.format)
	if err != nil {
		return err
	}

	cyclic := e.opts.Cyclic
	if cmd.Flags().Changed("cyclic") {
		cyclic = pickFlags.cyclic
	}
	ic, err := wheellayout.NewIntConfig(pickFlags.min, pickFlags.max, cyclic, pickFlags.label, formatter)
	if err != nil {
		return err
	}

	pane := tui.NewPane(pickFlags.name, e.opts)
	col := wheellayout.NewOneWheel(pane.Engine(), pane.Views())
	col.SetConfig(ic)
	pane.SetDescription(func() (string, string) { return col.Description(), col.Placeholder() })

	valueSet := cmd.Flags().Changed("value")
	if valueSet {
		col.SetValue(pickFlags.value)
	}

	return e.run(cmd, picker{
		name:   pickFlags.name,
		title:  fmt.Sprintf("%s  %d..%d", pickFlags.name, pickFlags.min, pickFlags.max),
		panes:  []*tui.Pane{pane},
		values: func() []int { return []int{col.Value()} },
		text:   func() string { return strconv.Itoa(col.Value()) },
		restore: func(s state.Selection) {
			if len(s.Values) == 1 {
				col.SetValue(s.Values[0])
			}
		},
	}, !valueSet)
}
