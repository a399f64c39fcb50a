package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit            key.Binding
	Up              key.Binding
	Down            key.Binding
	Left            key.Binding
	Right           key.Binding
	MoveUp          key.Binding
	MoveDown        key.Binding
	MoveLeft        key.Binding
	MoveRight       key.Binding
	ToggleDetails   key.Binding
	NewTask         key.Binding
	NewColumn       key.Binding
	EditTitle       key.Binding
	EditDescription key.Binding
	EditDates       key.Binding
	ToggleTag       key.Binding
	CyclePriority   key.Binding
	DeleteTask      key.Binding
	Search          key.Binding
	ClearSearch     key.Binding
	ToggleView      key.Binding
	PrevMonth       key.Binding
	NextMonth       key.Binding
	Confirm         key.Binding
	Cancel          key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Up:              key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:            key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:            key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:           key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		MoveUp:          key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up")),
		MoveDown:        key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down")),
		MoveLeft:        key.NewBinding(key.WithKeys("H", "shift+left"), key.WithHelp("H", "move left")),
		MoveRight:       key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("L", "move right")),
		ToggleDetails:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle details")),
		NewTask:         key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
		NewColumn:       key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "new column")),
		EditTitle:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit title")),
		EditDescription: key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "edit description")),
		EditDates:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "dates")),
		ToggleTag:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "tag")),
		CyclePriority:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "priority")),
		DeleteTask:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Search:          key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearSearch:     key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear search")),
		ToggleView:      key.NewBinding(key.WithKeys("v", "tab"), key.WithHelp("v", "switch view")),
		PrevMonth:       key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous month")),
		NextMonth:       key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		Confirm:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
