package modes

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"bufcycle/internal/ui/input/types"
	"bufcycle/internal/ui/keymap"
)

type NormalMode struct {
	keys keymap.Keymap
}

func NewNormalMode(keys keymap.Keymap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.NavigateAction{Direction: "next"}}, true

	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.NavigateAction{Direction: "prev"}}, true

	case key.Matches(msg, m.keys.First):
		return []types.Action{types.NavigateAction{Direction: "first"}}, true

	case key.Matches(msg, m.keys.Last):
		return []types.Action{types.NavigateAction{Direction: "last"}}, true

	case key.Matches(msg, m.keys.Close):
		// A modified buffer asks for confirmation before closing when the
		// host is configured that way.
		if ctx.CurrentBufferModified() && ctx.ConfirmCloseModified() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeCloseConfirm}}, true
		}
		return []types.Action{types.CloseBufferAction{}}, true

	case key.Matches(msg, m.keys.Open):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeOpen}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	}

	switch msg.String() {
	case "H":
		// Open the built-in help buffer; cycling from it stays within the
		// help class.
		return []types.Action{types.OpenHelpBufferAction{}}, true

	case "P":
		return []types.Action{types.ShowHelpPagerAction{}}, true
	}

	return nil, false
}
