package main

import (
	"fmt"
	"os"
	"strings"

	"charm.land/glamour/v2"
	"github.com/charmbracelet/x/term"
	"github.com/mark3labs/wheelr/internal/config"
	"github.com/mark3labs/wheelr/internal/journal"
	"github.com/mark3labs/wheelr/internal/nats"
	"github.com/mark3labs/wheelr/internal/state"
	"github.com/spf13/cobra"
)

var historyFlags struct {
	name string
	raw  bool
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show journaled picks and wheel activity",
	Long: `Replay the selection journal of a picker and print a report.

Without --name, lists every picker with journaled events. Journaling is
enabled with 'journal: true' in the config or WHEELR_JOURNAL=true.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyFlags.name, "name", "n", "", "Picker name")
	historyCmd.Flags().BoolVar(&historyFlags.raw, "raw", false, "Print markdown without rendering")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ctx := cmd.Context()

	conn, err := nats.Open(ctx, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() { _ = conn.Close() }()
	store := journal.NewStore(conn.JS, conn.Stream)

	out := cmd.OutOrStdout()
	if historyFlags.name == "" {
		pickers, err := store.Pickers(ctx)
		if err != nil {
			return err
		}
		if len(pickers) == 0 {
			_, err = fmt.Fprintln(out, "No journaled pickers.")
			return err
		}
		_, err = fmt.Fprintln(out, strings.Join(pickers, "\n"))
		return err
	}

	h, err := store.LoadHistory(ctx, state.Key(historyFlags.name))
	if err != nil {
		return err
	}
	md := h.Markdown()
	if historyFlags.raw {
		_, err = fmt.Fprint(out, md)
		return err
	}
	_, err = fmt.Fprint(out, renderMarkdown(md, terminalWidth()))
	return err
}

// renderMarkdown renders markdown for the terminal using glamour.
// Falls back to plain text if rendering fails.
func renderMarkdown(content string, width int) string {
	// Cap width to 120 for readability
	width = min(width, 120)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func terminalWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
