package tui

import (
	"strings"

	"github.com/mark3labs/wheelr/internal/tui/theme"
)

// Standard key representations for consistent hints across the picker.
// Use arrow symbols (↑↓) as primary, with j/k mentioned as backup.
const (
	KeyUpDownJK = "↑↓/jk"
	KeyEnter    = "enter"
	KeyEsc      = "esc"
	KeyTab      = "tab"
	KeyPgUpDown = "pgup/pgdn"
	KeyHomeEnd  = "home/end"
)

// RenderHint renders a single key-description pair.
// Example: RenderHint("enter", "pick") -> "enter pick"
func RenderHint(key, desc string) string {
	s := theme.Current().S()
	return s.HintKey.Render(key) + " " + s.HintDesc.Render(desc)
}

// RenderHintBar renders a hint bar with multiple key-description pairs.
// Pairs are separated by " . " (bullet point separator).
// Example: RenderHintBar("esc", "clear", "enter", "pick")
// Returns: "esc clear . enter pick"
func RenderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	s := theme.Current().S()
	var sb strings.Builder

	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			sb.WriteString(" " + s.HintSeparator.Render(".") + " ")
		}
		sb.WriteString(RenderHint(pairs[i], pairs[i+1]))
	}

	return sb.String()
}

// HintSearch returns hints shown while a type-to-jump query is active.
// "backspace edit . esc clear . enter pick"
func HintSearch() string {
	return RenderHintBar("backspace", "edit", KeyEsc, "clear", KeyEnter, "pick")
}
