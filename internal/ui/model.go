package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"bufcycle/internal/buffers"
	"bufcycle/internal/config"
	"bufcycle/internal/domain"
	"bufcycle/internal/eventbus"
	"bufcycle/internal/navigator"
	"bufcycle/internal/ui/input"
	inputtypes "bufcycle/internal/ui/input/types"
	"bufcycle/internal/ui/keymap"
	"bufcycle/internal/ui/views"
)

// Model is the Bubble Tea model for the bufcycle host
type Model struct {
	bus        eventbus.EventBus
	store      *buffers.Store
	nav        *navigator.Navigator
	cfg        *config.Config
	keys       keymap.Keymap
	handler    *input.Handler
	renderer   *views.Renderer
	helpRender *HelpRenderer
	helpOps    *HelpOps

	width         int
	height        int
	statusMessage string
	showHelp      bool
}

// NewModel creates the UI model
func NewModel(bus eventbus.EventBus, store *buffers.Store, nav *navigator.Navigator, cfg *config.Config) *Model {
	keys := keymap.KeymapFromConfig(cfg.Keys)
	return &Model{
		bus:        bus,
		store:      store,
		nav:        nav,
		cfg:        cfg,
		keys:       keys,
		handler:    input.New(keys),
		renderer:   views.NewRenderer(),
		helpRender: NewHelpRenderer(keys),
		helpOps:    NewHelpOps(nil),
	}
}

// SetProgram hands the model a reference to the running program, needed
// for releasing the terminal to the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{Store: m.store, Cfg: m.cfg}
		actions, cmd := m.handler.HandleKey(msg, ctx)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("pager error: %v", msg.err)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.statusMessage = ""
		switch a.Direction {
		case "next":
			m.nav.Next(navigator.Forward)
		case "prev":
			m.nav.Next(navigator.Backward)
		case "first":
			m.nav.First()
		case "last":
			m.nav.Last()
		}

	case inputtypes.CloseBufferAction:
		if a.Discard {
			m.store.Discard(m.store.CurrentBufferID())
		}
		m.nav.Close()

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeOpen && a.Text != "" {
			if _, err := m.store.Open(a.Text); err != nil {
				m.statusMessage = fmt.Sprintf("cannot open %s", a.Text)
			} else {
				m.statusMessage = fmt.Sprintf("opened %s", a.Text)
			}
		}

	case inputtypes.OpenHelpBufferAction:
		m.store.OpenScratch("[help]", domain.FiletypeHelp, m.helpRender.HelpBufferLines())

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.ShowHelpPagerAction:
		return m.fetchHelpPager()

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.BufferActivatedEvent:
		if e.ID != e.Previous {
			m.statusMessage = fmt.Sprintf("buffer %d", e.ID)
		}
	case eventbus.BufferClosedEvent:
		m.statusMessage = fmt.Sprintf("closed buffer %d", e.ID)
	case eventbus.NavigationBlockedEvent:
		m.statusMessage = "navigation blocked: " + e.Reason
	case eventbus.ErrorEvent:
		m.statusMessage = e.Message
	}
}

// fetchHelpPager shows the help in the ov pager
func (m *Model) fetchHelpPager() tea.Cmd {
	content := m.helpRender.RenderHelpContent()
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
	}
}

func (m *Model) View() string {
	state := views.ViewState{
		Width:             m.width,
		Height:            m.height,
		Buffers:           m.store.All(),
		CurrentID:         m.store.CurrentBufferID(),
		StatusMessage:     m.statusMessage,
		ModeName:          m.handler.ModeName(),
		ShowHelp:          m.showHelp,
		ShowBufferNumbers: m.cfg.UISettings.ShowBufferNumbers,
		KeyHints:          m.keyHints(),
	}
	if m.showHelp {
		state.HelpContent = m.helpRender.RenderHelpContent()
	}
	if ti := m.handler.TextInput(); ti != nil {
		state.InputPrompt = "Open: "
		state.InputText = ti.View()
	}
	if m.handler.CurrentMode() == inputtypes.ModeCloseConfirm {
		state.ConfirmTarget = m.handler.ConfirmTarget()
	}
	return m.renderer.Render(state)
}

func (m *Model) keyHints() string {
	return fmt.Sprintf("%s next • %s prev • %s close • %s open • %s help • %s quit",
		m.keys.Next.Help().Key,
		m.keys.Prev.Help().Key,
		m.keys.Close.Help().Key,
		m.keys.Open.Help().Key,
		m.keys.Help.Help().Key,
		m.keys.Quit.Help().Key)
}
