package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"bufcycle/internal/ui/input/types"
)

// OpenMode prompts for a file path to open in a new buffer
type OpenMode struct {
	TextInputMode
}

func NewOpenMode(ti *textinput.Model) *OpenMode {
	return &OpenMode{
		TextInputMode: NewTextInputMode(types.ModeOpen, "open", "Open: ", ti),
	}
}
