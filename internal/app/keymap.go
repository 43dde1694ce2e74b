package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the console key bindings shown in the footer.
type KeyMap struct {
	Quit     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Trigger  key.Binding
	Shortcut key.Binding
	Account  key.Binding
	Home     key.Binding
	SignOut  key.Binding
}

// FormKeyMap holds the sign-in form key bindings.
type FormKeyMap struct {
	Quit   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
}

// DefaultKeyMap returns the console bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "Quit")),
		Next:     key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "Next")),
		Prev:     key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "Prev")),
		Trigger:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select")),
		Shortcut: key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "Action")),
		Account:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Account")),
		Home:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "Home")),
		SignOut:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "Sign out")),
	}
}

// DefaultFormKeyMap returns the sign-in form bindings. Letters are left to
// the text inputs.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("Esc", "Quit")),
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("Tab", "Next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("S-Tab", "Prev field")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Sign In")),
	}
}
