package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/block-breaker/internal/core"
)

// KeyMap defines the keyboard bindings for a run. The mouse is the primary
// input; keys cover terminals without mouse reporting.
type KeyMap struct {
	Fire   key.Binding
	Left   key.Binding
	Right  key.Binding
	Small  key.Binding
	Large  key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Left, k.Right, k.Small, k.Large, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fire, k.Left, k.Right},
		{k.Small, k.Large},
		{k.Escape, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("click/space", "launch"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "nudge left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "nudge right"),
		),
		Small: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "small ball"),
		),
		Large: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "large ball"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// nudgeStep is how far one arrow press moves the pointer, in logical units.
const nudgeStep = 20

// KeyMapper translates Bubble Tea key messages to simulation input.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey returns the action bound to msg and a horizontal pointer nudge.
// Either may be zero.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, nudge float64) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, 0
	case key.Matches(msg, km.keys.Escape):
		return core.ActionEscape, 0
	case key.Matches(msg, km.keys.Fire):
		return core.ActionFire, 0
	case key.Matches(msg, km.keys.Small):
		return core.ActionSizeSmall, 0
	case key.Matches(msg, km.keys.Large):
		return core.ActionSizeLarge, 0
	case key.Matches(msg, km.keys.Left):
		return core.ActionNone, -nudgeStep
	case key.Matches(msg, km.keys.Right):
		return core.ActionNone, nudgeStep
	}
	return core.ActionNone, 0
}

// MapKeyToFrame applies a key message to an input frame, clamping the
// nudged pointer to [0, maxX].
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, maxX float64) {
	action, nudge := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	if nudge != 0 {
		frame.PointerX = core.ClampF(frame.PointerX+nudge, 0, maxX)
	}
}
