package tui

import "charm.land/bubbles/v2/key"

// KeyMap holds the picker's key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Search   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Accept   key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp(KeyUpDownJK, "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp(KeyPgUpDown, "page")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp(KeyHomeEnd, "ends")),
		End:      key.NewBinding(key.WithKeys("end")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp(KeyTab, "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab")),
		Accept:   key.NewBinding(key.WithKeys("enter"), key.WithHelp(KeyEnter, "pick")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp(KeyEsc, "cancel")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp returns the bindings shown in the footer. Bindings without
// help text are covered by a sibling's entry.
func (k KeyMap) ShortHelp(columns int) []key.Binding {
	bindings := []key.Binding{k.Up, k.PageUp, k.Search}
	if columns > 1 {
		bindings = append(bindings, k.Next)
	}
	return append(bindings, k.Accept, k.Cancel)
}
