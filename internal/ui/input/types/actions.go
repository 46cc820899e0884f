package types

// Buffer navigation actions
type NavigateAction struct {
	Direction string // "next", "prev", "first", "last"
}

func (a NavigateAction) Type() string { return "navigate" }

type CloseBufferAction struct {
	Discard bool // drop unsaved changes before closing
}

func (a CloseBufferAction) Type() string { return "close_buffer" }

type OpenHelpBufferAction struct{}

func (a OpenHelpBufferAction) Type() string { return "open_help_buffer" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ShowHelpPagerAction struct{}

func (a ShowHelpPagerAction) Type() string { return "show_help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
