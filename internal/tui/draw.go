package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/wheelr/internal/tui/theme"
)

// DrawText renders plain text at a position
func DrawText(scr uv.Screen, area uv.Rectangle, text string) {
	uv.NewStyledString(text).Draw(scr, area)
}

// DrawStyled renders lipgloss-styled content at a position
func DrawStyled(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, text string) {
	content := style.Width(area.Dx()).Height(area.Dy()).Render(text)
	uv.NewStyledString(content).Draw(scr, area)
}

// FillArea clears an area with a styled background
func FillArea(scr uv.Screen, area uv.Rectangle, style lipgloss.Style) {
	fill := style.Width(area.Dx()).Height(area.Dy()).Render("")
	uv.NewStyledString(fill).Draw(scr, area)
}

// DrawPanel renders a panel with a title header and returns the inner content area.
// The header shows "Title ────────" with a trailing rule line.
// Focus is indicated by the header color.
func DrawPanel(scr uv.Screen, area uv.Rectangle, title string, focused bool) uv.Rectangle {
	if area.Dy() <= 0 {
		return area
	}
	s := theme.Current().S()
	titleStyle, ruleStyle := s.PaneTitle, s.PaneRule
	if focused {
		titleStyle, ruleStyle = s.PaneTitleFocused, s.PaneRuleFocused
	}

	header := ""
	if title != "" {
		header = titleStyle.Render(title) + " "
	}
	ruleWidth := max(area.Dx()-lipgloss.Width(header), 0)
	header += ruleStyle.Render(strings.Repeat("─", ruleWidth))
	uv.NewStyledString(header).Draw(scr, uv.Rect(area.Min.X, area.Min.Y, area.Dx(), 1))

	inner := area
	inner.Min.Y++
	return inner
}
