package testfixtures

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Set Ascii profile to disable color output for consistent output across CI/platforms
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 80
	TestTermHeight = 16
)

// Render draws into a fresh screen buffer of the canonical size and returns
// its plain rendering.
func Render(draw func(scr uv.Screen, area uv.Rectangle)) string {
	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
	draw(canvas, canvas.Bounds())
	return canvas.Render()
}

// Lines splits a rendering into plain rows with trailing blanks trimmed.
func Lines(rendered string) []string {
	lines := strings.Split(ansi.Strip(rendered), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \r")
	}
	return lines
}

// Key builds a key press for a named key or a printable rune.
func Key(code rune) tea.KeyPressMsg {
	msg := tea.KeyPressMsg{Code: code}
	if code >= ' ' && code != tea.KeyBackspace && code < tea.KeyExtended {
		msg.Text = string(code)
	}
	return msg
}

// Type builds one key press per rune of s.
func Type(s string) []tea.KeyPressMsg {
	var msgs []tea.KeyPressMsg
	for _, r := range s {
		msgs = append(msgs, Key(r))
	}
	return msgs
}

// Click builds a left button press at (x, y).
func Click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

// Drag builds a motion event with the left button held at (x, y).
func Drag(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

// Release builds a left button release at (x, y).
func Release(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}

// Wheel builds a mouse wheel notch at (x, y), down when down is true.
func Wheel(x, y int, down bool) tea.MouseWheelMsg {
	button := tea.MouseWheelUp
	if down {
		button = tea.MouseWheelDown
	}
	return tea.MouseWheelMsg{X: x, Y: y, Button: button}
}
