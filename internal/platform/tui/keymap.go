package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/curry-rush/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Bite   key.Binding
	Volume key.Binding
	Quit   key.Binding
	Reload key.Binding // Swallowed so it never reaches the game
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bite, k.Volume, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Bite, k.Volume, k.Quit}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Bite: key.NewBinding(
			key.WithKeys(" ", "enter", "up", "w"),
			key.WithHelp("space/click", "eat"),
		),
		Volume: key.NewBinding(
			key.WithKeys("v", "m"),
			key.WithHelp("v", "volume"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Reload: key.NewBinding(
			key.WithKeys("f5", "ctrl+r"),
		),
	}
}

// Action is what a key press means to the shell.
type Action int

const (
	ActionNone Action = iota
	ActionBite
	ActionVolume
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to shell actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action. The reload keys map to
// ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, km.keys.Reload):
		return ActionNone
	case key.Matches(msg, km.keys.Quit):
		return ActionQuit
	case key.Matches(msg, km.keys.Volume):
		return ActionVolume
	case key.Matches(msg, km.keys.Bite):
		return ActionBite
	}
	return ActionNone
}

// Gestures debounces raw press/release events into exactly one
// start/end pair per physical interaction.
type Gestures struct {
	down bool
}

// Press returns SignalGestureStart unless a gesture is already open.
func (g *Gestures) Press() core.Signal {
	if g.down {
		return core.SignalNone
	}
	g.down = true
	return core.SignalGestureStart
}

// Release returns SignalGestureEnd if a gesture is open.
func (g *Gestures) Release() core.Signal {
	if !g.down {
		return core.SignalNone
	}
	g.down = false
	return core.SignalGestureEnd
}

// Tap returns a complete pair. Terminals report key presses but not key
// releases, so every key press is a whole gesture.
func (g *Gestures) Tap() []core.Signal {
	var out []core.Signal
	if s := g.Press(); s != core.SignalNone {
		out = append(out, s)
	}
	return append(out, g.Release())
}

// MapMouse turns a mouse event into at most one signal. Only the left
// button opens a gesture; any release closes it, since many terminals do
// not report which button was released.
func (g *Gestures) MapMouse(msg tea.MouseMsg) core.Signal {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return g.Press()
		}
	case tea.MouseActionRelease:
		return g.Release()
	}
	return core.SignalNone
}
