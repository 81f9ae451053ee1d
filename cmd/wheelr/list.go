package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/mark3labs/wheelr/internal/state"
	"github.com/mark3labs/wheelr/internal/tui"
	"github.com/mark3labs/wheelr/internal/wheellayout"
	"github.com/spf13/cobra"
)

var listFlags struct {
	value string
	name  string
}

var listCmd = &cobra.Command{
	Use:   "list [items...|-]",
	Short: "Pick one of a list of strings",
	Long: `Pick one item from a list on a single wheel.

Items come from the arguments, or one per line from stdin when the only
argument is "-" or stdin is not a terminal. Blank lines are skipped.`,
	Example: `  wheelr list small medium large
  git branch --format '%(refname:short)' | wheelr list --name branch`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFlags.value, "value", "v", "", "Initially selected item")
	listCmd.Flags().StringVarP(&listFlags.name, "name", "n", "list", "Picker name for remembered values and the journal")
}

var errNoItems = errors.New("no items to pick from")

// readItems returns args, or the non-blank lines of r when args ask for it.
func readItems(args []string, r io.Reader, piped bool) ([]string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return args, nil
	}
	if len(args) == 0 && !piped {
		return nil, errNoItems
	}

	var items []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); strings.TrimSpace(line) != "" {
			items = append(items, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	if len(items) == 0 {
		return nil, errNoItems
	}
	return items, nil
}

func runList(cmd *cobra.Command, args []string) error {
	items, err := readItems(args, cmd.InOrStdin(), !term.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	e, err := loadEnv()
	if err != nil {
		return err
	}

	pane := tui.NewPane(listFlags.name, e.opts)
	adapter := wheellayout.NewStringAdapter(items, pane.Views())
	pane.Engine().SetAdapter(adapter)

	valueSet := cmd.Flags().Changed("value")
	if valueSet {
		i := adapter.Index(listFlags.value)
		if i < 0 {
			return fmt.Errorf("value %q is not in the list", listFlags.value)
		}
		pane.Engine().SetCurrentItem(i, false)
	}

	current := func() int { return pane.Engine().CurrentItem() }
	return e.run(cmd, picker{
		name:   listFlags.name,
		title:  fmt.Sprintf("%s  %d items", listFlags.name, len(items)),
		panes:  []*tui.Pane{pane},
		values: func() []int { return []int{current()} },
		text:   func() string { return adapter.Text(current()) },
		restore: func(s state.Selection) {
			// items may have changed since; match by text
			if i := adapter.Index(s.Text); i >= 0 {
				pane.Engine().SetCurrentItem(i, false)
			}
		},
	}, !valueSet)
}
