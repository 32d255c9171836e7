package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal-mode bindings. It satisfies help.KeyMap so the
// footer and the help popup stay in sync with what the modes accept.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Tab        key.Binding
	Search     key.Binding
	Toggle     key.Binding
	Only       key.Binding
	Clear      key.Binding
	Detail     key.Binding
	Pager      key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	ClosePopup key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "top")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "bottom")),
		Tab:        key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch pane")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle amenity")),
		Only:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "only this amenity")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		Detail:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "park details")),
		Pager:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view list in pager")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
		ClosePopup: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Tab, k.Toggle, k.Detail, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Tab, k.Search, k.Toggle, k.Only, k.Clear},
		{k.Detail, k.Pager, k.ClosePopup, k.Help, k.Quit},
	}
}
