package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"bufcycle/internal/ui/input/types"
)

// ConfirmMode asks before closing a buffer with unsaved changes
type ConfirmMode struct {
	bufferName string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "close-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	m.bufferName = ctx.CurrentBufferName()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// BufferName returns the name of the buffer pending confirmation
func (m *ConfirmMode) BufferName() string {
	return m.bufferName
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "n", "N":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "y", "Y":
		return []types.Action{
			types.CloseBufferAction{Discard: true},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	return nil, false
}
