package tui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/wheelr/internal/tui/testfixtures"
	"github.com/mark3labs/wheelr/internal/wheellayout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLayout(t *testing.T) {
	l := CalculateLayout(80, 16, 2)

	assert.Equal(t, uv.Rect(0, 0, 80, 1), l.Title)
	assert.Equal(t, uv.Rect(0, 1, 80, 13), l.Content)
	assert.Equal(t, uv.Rect(0, 14, 80, 1), l.Status)
	assert.Equal(t, uv.Rect(0, 15, 80, 1), l.Footer)
	require.Len(t, l.Columns, 2)
	assert.Equal(t, uv.Rect(7, 1, 32, 13), l.Columns[0])
	assert.Equal(t, uv.Rect(41, 1, 32, 13), l.Columns[1])

	narrow := CalculateLayout(20, 10, 3)
	require.Len(t, narrow.Columns, 3)
	for _, c := range narrow.Columns {
		assert.Equal(t, 5, c.Dx())
		assert.True(t, c.In(narrow.Content))
	}

	assert.Empty(t, CalculateLayout(80, 16, 0).Columns)
	tiny := CalculateLayout(1, 1, 1)
	assert.Equal(t, 1, tiny.Title.Dy())
	assert.Equal(t, 0, tiny.Content.Dy())
}

// newTestApp shows two fruit wheels side by side on an 80×16 terminal.
// Each wheel's central row is terminal row 7.
func newTestApp(t *testing.T) (*App, []*Pane) {
	t.Helper()
	var panes []*Pane
	var adapters []*wheellayout.StringAdapter
	for _, title := range []string{"first", "second"} {
		p := NewPane(title, testOptions())
		a := wheellayout.NewStringAdapter(testfixtures.Fruits(), p.Views())
		p.Engine().SetAdapter(a)
		panes = append(panes, p)
		adapters = append(adapters, a)
		t.Cleanup(p.Close)
	}
	value := func() string {
		var parts []string
		for i, p := range panes {
			parts = append(parts, adapters[i].Text(p.Engine().CurrentItem()))
		}
		return strings.Join(parts, "/")
	}
	a := NewApp("pick two fruits", value, panes...)
	a.Update(tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})
	a.ensureLayout()
	require.Equal(t, uv.Rect(7, 5, 32, 5), panes[0].WheelArea())
	return a, panes
}

// runFrames feeds frame ticks until no pane asks for another.
func runFrames(t *testing.T, a *App) {
	t.Helper()
	now := time.Now()
	for range 50 {
		if !a.ticking {
			return
		}
		now = now.Add(time.Second)
		a.Update(FrameMsg(now))
	}
	t.Fatal("animation did not settle")
}

func send(a *App, msgs ...tea.Msg) {
	for _, m := range msgs {
		a.Update(m)
	}
}

// typeText sends s to the app one key press at a time.
func typeText(a *App, s string) {
	for _, k := range testfixtures.Type(s) {
		send(a, k)
	}
}

func TestAppFocus(t *testing.T) {
	a, panes := newTestApp(t)
	assert.Equal(t, 0, a.Focused())
	assert.True(t, panes[0].Focused())

	send(a, testfixtures.Key(tea.KeyTab))
	assert.Equal(t, 1, a.Focused())
	assert.False(t, panes[0].Focused())
	assert.True(t, panes[1].Focused())

	send(a, testfixtures.Key(tea.KeyTab))
	assert.Equal(t, 0, a.Focused(), "tab wraps")

	send(a, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, 1, a.Focused(), "shift+tab wraps backwards")

	// clicking a header focuses without scrolling
	send(a, testfixtures.Click(10, 1), testfixtures.Release(10, 1))
	assert.Equal(t, 0, a.Focused())
	assert.False(t, a.ticking)
}

func TestAppKeysGoToFocusedPane(t *testing.T) {
	a, panes := newTestApp(t)

	send(a, testfixtures.Key(tea.KeyTab), testfixtures.Key(tea.KeyDown))
	require.True(t, a.ticking, "a scroll schedules a frame")
	runFrames(t, a)

	assert.Equal(t, 0, panes[0].Engine().CurrentItem())
	assert.Equal(t, 1, panes[1].Engine().CurrentItem())
	assert.Equal(t, "apple/banana", a.Value())
}

func TestAppMouse(t *testing.T) {
	a, panes := newTestApp(t)

	// wheel notch over the second column
	send(a, testfixtures.Wheel(50, 7, true))
	runFrames(t, a)
	assert.Equal(t, 1, panes[1].Engine().CurrentItem())
	assert.Equal(t, 0, a.Focused(), "the wheel does not move focus")

	// tap one row below the center of the first column
	send(a, testfixtures.Click(20, 8), testfixtures.Release(20, 8))
	runFrames(t, a)
	assert.Equal(t, 1, panes[0].Engine().CurrentItem())

	// drag the second column up two rows
	send(a, testfixtures.Click(50, 9), testfixtures.Drag(50, 7))
	assert.Equal(t, 1, a.Focused())
	assert.Equal(t, 3, panes[1].Engine().CurrentItem())
	send(a, testfixtures.Release(50, 7))
	runFrames(t, a)
	assert.False(t, panes[1].Engine().IsScrolling())
	assert.Nil(t, a.dragging)

	// motion without a press is ignored
	send(a, testfixtures.Drag(20, 5))
	assert.False(t, panes[0].Engine().IsScrolling())
}

func TestAppAccept(t *testing.T) {
	a, _ := newTestApp(t)
	send(a, testfixtures.Key(tea.KeyDown))

	_, cmd := a.Update(testfixtures.Key(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.True(t, a.Accepted())
	assert.Equal(t, "banana/apple", a.Value(), "enter settles a running scroll")

	view := a.View()
	assert.False(t, view.AltScreen)
}

func TestAppCancel(t *testing.T) {
	a, panes := newTestApp(t)

	typeText(a, "ch")
	runFrames(t, a)
	_, searching := panes[0].Query()
	require.True(t, searching)

	// the first esc ends the search
	send(a, testfixtures.Key(tea.KeyEscape))
	_, searching = panes[0].Query()
	assert.False(t, searching)
	assert.True(t, a.View().AltScreen)

	_, cmd := a.Update(testfixtures.Key(tea.KeyEscape))
	require.NotNil(t, cmd)
	assert.False(t, a.Accepted())
	assert.Equal(t, "cherry/apple", a.Value())

	b, _ := newTestApp(t)
	_, cmd = b.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.False(t, b.Accepted())
}

func TestAppDraw(t *testing.T) {
	a, _ := newTestApp(t)
	send(a, testfixtures.Key(tea.KeyDown))
	runFrames(t, a)

	lines := testfixtures.Lines(testfixtures.Render(a.Draw))
	require.GreaterOrEqual(t, len(lines), testfixtures.TestTermHeight)

	assert.Equal(t, " pick two fruits", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "       first ─"), lines[1])
	assert.Contains(t, lines[1], "second ─")
	assert.Contains(t, lines[6], "apple")
	assert.Contains(t, lines[7], "banana")
	assert.Contains(t, lines[7], "apple")
	assert.Contains(t, lines[8], "cherry")
	assert.Equal(t, " value banana/apple", lines[14])
	assert.Contains(t, lines[15], "enter pick")
	assert.Contains(t, lines[15], "tab next")

	send(a, testfixtures.Key('/'))
	lines = testfixtures.Lines(testfixtures.Render(a.Draw))
	assert.Equal(t, " value banana/apple  /", lines[14])
	assert.Contains(t, lines[15], "esc clear")
}
