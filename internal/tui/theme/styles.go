package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the picker.
type Styles struct {
	Title            lipgloss.Style
	PaneTitle        lipgloss.Style
	PaneTitleFocused lipgloss.Style
	PaneRule         lipgloss.Style
	PaneRuleFocused  lipgloss.Style
	Description      lipgloss.Style
	Status           lipgloss.Style
	StatusValue      lipgloss.Style
	StatusQuery      lipgloss.Style
	HintKey          lipgloss.Style
	HintDesc         lipgloss.Style
	HintSeparator    lipgloss.Style
	Error            lipgloss.Style
}
