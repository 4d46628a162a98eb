package viz

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the live view bindings.
type KeyMap struct {
	Algorithm key.Binding
	Shuffle   key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Pause     key.Binding
	Step      key.Binding
	Rewind    key.Binding
	Forward   key.Binding
	Theme     key.Binding
	Record    key.Binding
	Help      key.Binding
	Menu      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Algorithm: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "algorithm"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "shuffle"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "step"),
		),
		Rewind: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "rewind"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "forward"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Record: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "record gif"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Menu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Algorithm, k.Pause, k.Shuffle, k.Faster, k.Slower, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Algorithm, k.Shuffle, k.Pause, k.Step},
		{k.Faster, k.Slower, k.Rewind, k.Forward},
		{k.Theme, k.Record, k.Help, k.Menu, k.Quit},
	}
}
