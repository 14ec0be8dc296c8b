package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"safety-board/keys"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var actionGroupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

var separator = " • "
var verticalSeparator = " │ "

var menuStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205"))

// MenuState represents different states the menu can be in
type MenuState int

const (
	StateLocked MenuState = iota
	StateEditing
	StateGesture
)

// Menu shows the key hints for the current board state.
type Menu struct {
	height, width int
	state         MenuState

	// keyDown is the key which is pressed. The default is -1.
	keyDown keys.KeyName
}

// Each state's options, split into an action group and a system group.
var menuGroups = map[MenuState][2][]keys.KeyName{
	StateLocked:  {{keys.KeyLock}, {keys.KeyCopy, keys.KeyHelp, keys.KeyQuit}},
	StateEditing: {{keys.KeyLock, keys.KeyReset}, {keys.KeyCopy, keys.KeyHelp, keys.KeyQuit}},
	StateGesture: {{keys.KeyEsc}, {keys.KeyQuit}},
}

func NewMenu() *Menu {
	return &Menu{
		state:   StateLocked,
		keyDown: -1,
	}
}

func (m *Menu) Keydown(name keys.KeyName) {
	m.keyDown = name
}

func (m *Menu) ClearKeydown() {
	m.keyDown = -1
}

// SetState updates the menu state and options accordingly
func (m *Menu) SetState(state MenuState) {
	m.state = state
}

func (m *Menu) State() MenuState {
	return m.state
}

// Options returns the options shown in the current state, action group first.
func (m *Menu) Options() []keys.KeyName {
	groups := menuGroups[m.state]
	return append(append([]keys.KeyName{}, groups[0]...), groups[1]...)
}

// SetSize sets the width of the window. The menu will be centered horizontally within this width.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Menu) String() string {
	var s strings.Builder

	groups := menuGroups[m.state]
	for gi, group := range groups {
		for i, k := range group {
			binding := keys.GlobalkeyBindings[k]

			var (
				localKeyStyle  = keyStyle
				localDescStyle = descStyle
			)
			if gi == 0 {
				localKeyStyle = actionGroupStyle
				localDescStyle = actionGroupStyle
			}
			if m.keyDown == k {
				localKeyStyle = localKeyStyle.Underline(true)
				localDescStyle = localDescStyle.Underline(true)
			}

			desc := binding.Help().Desc
			if k == keys.KeyLock {
				desc = lockDesc(m.state)
			}
			s.WriteString(localKeyStyle.Render(binding.Help().Key))
			s.WriteString(" ")
			s.WriteString(localDescStyle.Render(desc))

			if i != len(group)-1 {
				s.WriteString(sepStyle.Render(separator))
			}
		}
		if gi != len(groups)-1 && len(groups[gi+1]) > 0 {
			s.WriteString(sepStyle.Render(verticalSeparator))
		}
	}

	centeredMenuText := menuStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, centeredMenuText)
}

func lockDesc(state MenuState) string {
	if state == StateLocked {
		return "unlock"
	}
	return "lock"
}
