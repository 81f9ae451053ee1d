package main

import (
	"strconv"

	"github.com/mark3labs/wheelr/internal/state"
	"github.com/mark3labs/wheelr/internal/tui"
	"github.com/mark3labs/wheelr/internal/wheellayout"
	"github.com/spf13/cobra"
)

var floatFlags struct {
	min   float64
	max   float64
	value float64
	label string
	name  string
}

var floatCmd = &cobra.Command{
	Use:   "float",
	Short: "Pick a number with one decimal",
	Long: `Pick a non-negative number with one decimal on two linked wheels.

The left wheel holds the integer part and the right wheel the tenths. At
either end of the range the tenths wheel only offers values inside it.`,
	Example: `  wheelr float --min 35 --max 42 --value 36.6 --label °C`,
	RunE:    runFloat,
}

func init() {
	floatCmd.Flags().Float64Var(&floatFlags.min, "min", 0, "Smallest value")
	floatCmd.Flags().Float64Var(&floatFlags.max, "max", 100, "Largest value")
	floatCmd.Flags().Float64VarP(&floatFlags.value, "value", "v", 0, "Initial value (default: --min)")
	floatCmd.Flags().StringVarP(&floatFlags.label, "label", "l", "", "Unit label shown beside the tenths")
	floatCmd.Flags().StringVarP(&floatFlags.name, "name", "n", "float", "Picker name for remembered values and the journal")
}

func runFloat(cmd *cobra.Command, args []string) error {
	fc, err := wheellayout.NewFloatConfig(floatFlags.min, floatFlags.max)
	if err != nil {
		return err
	}
	e, err := loadEnv()
	if err != nil {
		return err
	}
	fc.IntDescription = "."
	fc.FractionDescription = floatFlags.label

	intPane := tui.NewPane("integer", e.opts)
	fracPane := tui.NewPane("tenths", e.opts)
	two := wheellayout.NewTwoWheel(
		wheellayout.NewOneWheel(intPane.Engine(), intPane.Views()),
		wheellayout.NewOneWheel(fracPane.Engine(), fracPane.Views()),
	)
	two.SetFloatConfig(fc)
	intPane.SetDescription(func() (string, string) { return two.First.Description(), two.First.Placeholder() })
	fracPane.SetDescription(func() (string, string) { return two.Second.Description(), two.Second.Placeholder() })

	valueSet := cmd.Flags().Changed("value")
	if valueSet {
		two.SetFloatValue(floatFlags.value)
	}

	return e.run(cmd, picker{
		name:  floatFlags.name,
		title: floatFlags.name,
		panes: []*tui.Pane{intPane, fracPane},
		values: func() []int {
			a, b := two.Value()
			return []int{a, b}
		},
		text: func() string { return strconv.FormatFloat(two.FloatValue(), 'f', 1, 64) },
		restore: func(s state.Selection) {
			if len(s.Values) == 2 {
				two.SetValue(s.Values[0], s.Values[1])
			}
		},
	}, !valueSet)
}
