package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Today     key.Binding
	Year      key.Binding
	Month     key.Binding
	Open      key.Binding
	Busy      key.Binding
	Free      key.Binding
	Toggle    key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
		PrevYear:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "prev year")),
		NextYear:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next year")),
		Today:     key.NewBinding(key.WithKeys("."), key.WithHelp(".", "today")),
		Year:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "go to year")),
		Month:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "go to month")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open day")),
		Busy:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "busy")),
		Free:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "free")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "space", "t"), key.WithHelp("space", "toggle")),
		Back:      key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// monthHelp lists the bindings of the month grid.
type monthHelp keyMap

func (k monthHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear, k.Today, k.Quit}
}

func (k monthHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear},
		{k.Today, k.Year, k.Month, k.Open, k.Quit},
	}
}

// dayHelp lists the bindings of the day view.
type dayHelp keyMap

func (k dayHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Busy, k.Free, k.Toggle, k.Back, k.Quit}
}

func (k dayHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
