package theme

import (
	"image/color"
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the picker.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // focused pane, highlight, title
	Secondary string
	Tertiary  string

	// Background hierarchy (dark→light)
	BgCrust    string
	BgMantle   string
	BgBase     string
	BgSurface0 string
	BgSurface1 string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

var (
	current     = NewCatppuccinMocha()
	currentLock sync.RWMutex
)

// Current returns the active theme.
func Current() *Theme {
	currentLock.RLock()
	defer currentLock.RUnlock()
	return current
}

// SetCurrent replaces the active theme.
func SetCurrent(t *Theme) {
	currentLock.Lock()
	defer currentLock.Unlock()
	current = t
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// HexToColor converts a theme hex string to a color.
func HexToColor(hex string) color.Color {
	return lipgloss.Color(hex)
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		PaneTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)),
		PaneTitleFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		PaneRule: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgSurface1)),
		PaneRuleFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),
		Description: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		Status: lipgloss.NewStyle().
			Background(lipgloss.Color(t.BgMantle)).
			Foreground(lipgloss.Color(t.FgSubtle)),
		StatusValue: lipgloss.NewStyle().
			Background(lipgloss.Color(t.BgMantle)).
			Foreground(lipgloss.Color(t.FgBright)).
			Bold(true),
		StatusQuery: lipgloss.NewStyle().
			Background(lipgloss.Color(t.BgMantle)).
			Foreground(lipgloss.Color(t.Warning)),
		HintKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgSubtle)),
		HintDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgMuted)),
		HintSeparator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BgSurface1)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)),
	}
}
