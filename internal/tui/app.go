// Package tui hosts wheel engines in a bubbletea program: one Pane per
// column, a title, a status bar with the current value and a help footer.
package tui

import (
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/wheelr/internal/logger"
	"github.com/mark3labs/wheelr/internal/scroller"
	"github.com/mark3labs/wheelr/internal/tui/theme"
)

// FrameInterval is the animation tick rate.
const FrameInterval = 16 * time.Millisecond

// FrameMsg drives engine animations. It carries the tick time.
type FrameMsg time.Time

// App is the main Bubbletea model that manages the picker.
type App struct {
	title string
	panes []*Pane
	value func() string
	keys  KeyMap
	help  help.Model
	log   *logger.Component

	// Layout management
	layout      Layout
	layoutDirty bool

	// State
	focus    int
	dragging *Pane
	ticking  bool
	width    int
	height   int
	accepted bool
	quitting bool
}

// NewApp creates a picker showing panes left to right. value formats the
// current selection for the status bar and the final result.
func NewApp(title string, value func() string, panes ...*Pane) *App {
	h := help.New()
	s := theme.Current().S()
	h.Styles.ShortKey = s.HintKey
	h.Styles.ShortDesc = s.HintDesc
	h.Styles.ShortSeparator = s.HintSeparator

	a := &App{
		title:       title,
		panes:       panes,
		value:       value,
		keys:        DefaultKeyMap(),
		help:        h,
		log:         logger.Named("tui"),
		layoutDirty: true,
	}
	if len(panes) > 0 {
		panes[0].SetFocused(true)
	}
	return a
}

// Init initializes the application and returns any initial commands.
func (a *App) Init() tea.Cmd {
	return a.scheduleFrame()
}

// Accepted reports whether the picker closed with Enter.
func (a *App) Accepted() bool { return a.accepted }

// Value returns the formatted current selection.
func (a *App) Value() string {
	if a.value == nil {
		return ""
	}
	return a.value()
}

// Panes returns the columns in display order.
func (a *App) Panes() []*Pane { return a.panes }

// Focused returns the index of the pane taking keyboard input.
func (a *App) Focused() int { return a.focus }

// Update handles incoming messages and updates the model state. Any pane
// that asked for a frame while handling msg gets a tick scheduled.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	return a, tea.Batch(cmd, a.scheduleFrame())
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return a.handleKeyPress(msg)

	case tea.MouseClickMsg:
		a.handleMouseDown(msg)

	case tea.MouseMotionMsg:
		if a.dragging != nil {
			a.dragging.Pointer(scroller.Move, msg.Mouse().Y)
		}

	case tea.MouseReleaseMsg:
		if a.dragging != nil {
			a.dragging.Pointer(scroller.Up, msg.Mouse().Y)
			a.dragging = nil
		}

	case tea.MouseWheelMsg:
		a.handleMouseWheel(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layoutDirty = true

	case FrameMsg:
		a.ticking = false
		now := time.Time(msg)
		for _, p := range a.panes {
			if p.takeFrame() {
				p.engine.Tick(now)
			}
		}
	}
	return nil
}

// scheduleFrame starts a tick when a pane requested one and none is pending.
func (a *App) scheduleFrame() tea.Cmd {
	if a.ticking {
		return nil
	}
	for _, p := range a.panes {
		if p.frameRequested {
			a.ticking = true
			return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
				return FrameMsg(t)
			})
		}
	}
	return nil
}

// handleKeyPress routes keys: quit, accept and focus first, then the
// focused pane, then cancel.
func (a *App) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a.quit(false)
	case key.Matches(msg, a.keys.Accept):
		return a.quit(true)
	case key.Matches(msg, a.keys.Next):
		a.setFocus(a.focus + 1)
		return nil
	case key.Matches(msg, a.keys.Prev):
		a.setFocus(a.focus - 1)
		return nil
	}

	if p := a.focused(); p != nil && p.Update(msg) {
		return nil
	}

	if key.Matches(msg, a.keys.Cancel) {
		return a.quit(false)
	}
	return nil
}

// quit settles every wheel so the reported value is where each was heading.
func (a *App) quit(accept bool) tea.Cmd {
	for _, p := range a.panes {
		p.Settle()
	}
	a.accepted = accept
	a.quitting = true
	a.log.Debug("quit accepted=%v value=%q", accept, a.Value())
	return tea.Quit
}

func (a *App) focused() *Pane {
	if a.focus < 0 || a.focus >= len(a.panes) {
		return nil
	}
	return a.panes[a.focus]
}

func (a *App) setFocus(i int) {
	n := len(a.panes)
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	if p := a.focused(); p != nil {
		p.SetFocused(false)
	}
	a.focus = i
	a.panes[i].SetFocused(true)
}

func (a *App) paneAt(x, y int) int {
	for i, p := range a.panes {
		if p.Contains(x, y) {
			return i
		}
	}
	return -1
}

func (a *App) handleMouseDown(msg tea.MouseClickMsg) {
	mouse := msg.Mouse()

	// Only handle left mouse button
	if mouse.Button != tea.MouseLeft {
		return
	}
	a.ensureLayout()
	i := a.paneAt(mouse.X, mouse.Y)
	if i < 0 {
		return
	}
	a.setFocus(i)
	p := a.panes[i]
	if !(uv.Position{X: mouse.X, Y: mouse.Y}).In(p.WheelArea()) {
		return
	}
	a.dragging = p
	p.Pointer(scroller.Down, mouse.Y)
}

func (a *App) handleMouseWheel(msg tea.MouseWheelMsg) {
	mouse := msg.Mouse()

	var items int
	switch mouse.Button {
	case tea.MouseWheelUp:
		items = -1
	case tea.MouseWheelDown:
		items = 1
	default:
		return
	}

	// Scroll the wheel under the cursor
	a.ensureLayout()
	if i := a.paneAt(mouse.X, mouse.Y); i >= 0 {
		a.panes[i].ScrollNotch(items)
	}
}

func (a *App) ensureLayout() {
	if !a.layoutDirty {
		return
	}
	a.layout = CalculateLayout(a.width, a.height, len(a.panes))
	for i, p := range a.panes {
		p.SetArea(a.layout.Columns[i])
	}
	a.layoutDirty = false
}

// View renders the current view. In Bubbletea v2, this returns tea.View
// with display options like AltScreen and MouseMode.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true                    // Full-screen mode
	view.MouseMode = tea.MouseModeCellMotion // Press, drag and release events

	if a.quitting {
		// Return minimal view when quitting - exit alt screen for proper terminal restoration
		view.AltScreen = false
		view.MouseMode = 0
		view.Content = lipgloss.NewLayer("")
		return view
	}

	a.ensureLayout()

	// Create screen buffer for drawing
	canvas := uv.NewScreenBuffer(a.width, a.height)
	a.Draw(canvas, canvas.Bounds())

	view.Content = lipgloss.NewLayer(canvas.Render())

	// Set global background color for the entire terminal
	view.BackgroundColor = theme.HexToColor(theme.Current().BgBase)

	return view
}

// Draw renders all components to the screen buffer.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	a.ensureLayout()
	s := theme.Current().S()

	DrawStyled(scr, a.layout.Title, s.Title, " "+a.title)
	for _, p := range a.panes {
		p.Draw(scr)
	}
	a.drawStatus(scr, a.layout.Status)

	footer := " " + a.help.ShortHelpView(a.keys.ShortHelp(len(a.panes)))
	if p := a.focused(); p != nil {
		if _, searching := p.Query(); searching {
			footer = " " + HintSearch()
		}
	}
	DrawText(scr, a.layout.Footer, footer)
}

func (a *App) drawStatus(scr uv.Screen, area uv.Rectangle) {
	if area.Empty() {
		return
	}
	s := theme.Current().S()
	FillArea(scr, area, s.Status)

	line := s.Status.Render(" value ") + s.StatusValue.Render(a.Value())
	if p := a.focused(); p != nil {
		if q, searching := p.Query(); searching {
			line += s.Status.Render("  ") + s.StatusQuery.Render("/"+q)
		}
	}
	DrawText(scr, area, line)
}
