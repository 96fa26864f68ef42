package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/tuiform/internal/form"
)

// KeysFromMsg decodes a Bubble Tea key message into form keys. Pasted text
// yields one key per character; keys the form has no use for decode to
// KeyUnknown.
func KeysFromMsg(msg tea.KeyMsg) []form.Key {
	switch msg.Type {
	case tea.KeyEnter:
		return []form.Key{form.CodeKey(form.KeyEnter)}
	case tea.KeyEsc:
		return []form.Key{form.CodeKey(form.KeyEsc)}
	case tea.KeyBackspace:
		return []form.Key{form.CodeKey(form.KeyBackspace)}
	case tea.KeyUp:
		return []form.Key{form.CodeKey(form.KeyUp)}
	case tea.KeyDown:
		return []form.Key{form.CodeKey(form.KeyDown)}
	case tea.KeySpace:
		return []form.Key{form.RuneKey(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return []form.Key{form.CodeKey(form.KeyUnknown)}
		}
		keys := make([]form.Key, len(msg.Runes))
		for i, r := range msg.Runes {
			keys[i] = form.RuneKey(r)
		}
		return keys
	default:
		return []form.Key{form.CodeKey(form.KeyUnknown)}
	}
}

// navigateKeyMap defines key bindings while no field is being edited
type navigateKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Clear  key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k navigateKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Clear, k.Submit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k navigateKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit, k.Clear},
		{k.Submit, k.Quit},
	}
}

// withSelection enables the bindings that only apply with or without a
// hovered field. Submit and quit are only offered with nothing selected.
func (k navigateKeyMap) withSelection(sel form.Selection) navigateKeyMap {
	none := sel.Mode() == form.ModeNone
	k.Clear.SetEnabled(!none)
	k.Submit.SetEnabled(none)
	k.Quit.SetEnabled(none)
	return k
}

// editKeyMap defines key bindings while a field is being edited
type editKeyMap struct {
	Next   key.Binding
	Delete key.Binding
	Done   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Delete, k.Done}
}

// FullHelp returns keybindings for the expanded help view
func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Delete, k.Done}}
}

// submittedKeyMap defines key bindings for the submitted screen
type submittedKeyMap struct {
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k submittedKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k submittedKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Back, k.Quit}}
}

func newNavigateKeyMap() navigateKeyMap {
	return navigateKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "submit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

func newEditKeyMap() editKeyMap {
	return editKeyMap{
		Next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next field"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Done: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "done"),
		),
	}
}

func newSubmittedKeyMap() submittedKeyMap {
	return submittedKeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc", "e"),
			key.WithHelp("esc/e", "edit again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}
