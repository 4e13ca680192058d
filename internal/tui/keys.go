package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	UpDown   key.Binding
	Collapse key.Binding
	Edit     key.Binding
	Move     key.Binding
	Indent   key.Binding
	Outdent  key.Binding
	NewTask  key.Binding
	Delete   key.Binding
	Find     key.Binding
	Export   key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Enter    key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		UpDown:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("j/k", "navigate")),
		Collapse: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "collapse")),
		Edit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Move:     key.NewBinding(key.WithKeys("shift+up", "shift+down"), key.WithHelp("J/K", "move")),
		Indent:   key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "indent")),
		Outdent:  key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "outdent")),
		NewTask:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new task")),
		Delete:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Find:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.UpDown, k.Collapse, k.Edit, k.Move, k.Find, k.Export, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextTab, k.UpDown, k.Collapse, k.Edit, k.Move, k.Indent, k.Outdent, k.NewTask, k.Delete, k.Find, k.Export, k.Quit}}
}
