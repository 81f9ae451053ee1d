package journal

import (
	"fmt"
	"strings"
)

// recentPicks is how many accepted results the report lists.
const recentPicks = 10

// Markdown renders the history as a short markdown report.
func (h *History) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", h.Picker)

	if h.Events == 0 {
		b.WriteString("_No journaled activity._\n")
		return b.String()
	}

	if h.Last != nil {
		fmt.Fprintf(&b, "Last pick: **%s** (%s)\n\n", h.Last.Text, h.Last.At.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&b, "%d events: %d changes, %d gestures, %d clicks, %d picks.\n\n",
		h.Events, h.Changes, h.Gestures, h.Clicks, len(h.Picks))

	if len(h.Wheels) > 0 {
		b.WriteString("## Wheels\n\n")
		b.WriteString("| Wheel | Changes | Gestures | Clicks | Current |\n")
		b.WriteString("|---:|---:|---:|---:|---:|\n")
		for i, w := range h.Wheels {
			fmt.Fprintf(&b, "| %d | %d | %d | %d | %d |\n", i+1, w.Changes, w.Gestures, w.Clicks, w.Current)
		}
		b.WriteString("\n")
	}

	if len(h.Picks) > 0 {
		b.WriteString("## Recent picks\n\n")
		start := max(0, len(h.Picks)-recentPicks)
		for i := len(h.Picks) - 1; i >= start; i-- {
			p := h.Picks[i]
			fmt.Fprintf(&b, "- `%s` at %s\n", p.Text, p.At.Format("2006-01-02 15:04:05"))
		}
	}

	return b.String()
}
