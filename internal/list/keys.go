package list

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Yank     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j", "down"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move item up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move item down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy title"),
	),
}

// HelpEntries returns key/description pairs for the help footer.
func HelpEntries() [][2]string {
	bindings := []key.Binding{keys.Up, keys.Down, keys.MoveUp, keys.MoveDown, keys.Top, keys.Bottom, keys.Yank}
	entries := make([][2]string, 0, len(bindings)+1)
	for _, b := range bindings {
		entries = append(entries, [2]string{b.Help().Key, b.Help().Desc})
	}
	entries = append(entries, [2]string{"drag", "reorder with mouse"})
	return entries
}
