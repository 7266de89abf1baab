package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/squeeze/internal/domain"
	"github.com/mmcdole/squeeze/internal/service"
	"github.com/mmcdole/squeeze/internal/tui/components"
	"github.com/mmcdole/squeeze/internal/tui/events"
)

// Defaults for Options
const (
	DefaultSaveDelay = 400 * time.Millisecond
	statusDuration   = 3 * time.Second
)

// Options configures the root model
type Options struct {
	// ReadOnly disables the settings panel for the whole session
	ReadOnly bool
	// SaveDelay debounces persistence while the slider is dragged
	SaveDelay time.Duration
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready bool

	// Services
	SettingsSvc *service.SettingsService
	Locale      domain.LocaleStore

	// UI Components
	bus    *events.Bus
	Header *components.Header
	Panel  *components.SettingsPanel
	Help   help.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	readOnly    bool
	locked      bool

	// Save debouncing: only the tick for the latest generation persists
	saveGen   int
	pending   bool
	saveDelay time.Duration
}

// NewModel creates a new application model
func NewModel(svc *service.SettingsService, locale domain.LocaleStore, opts Options) Model {
	if opts.SaveDelay <= 0 {
		opts.SaveDelay = DefaultSaveDelay
	}

	bus := events.NewBus()
	m := Model{
		SettingsSvc: svc,
		Locale:      locale,
		bus:         bus,
		Help:        help.New(),
		readOnly:    opts.ReadOnly,
		saveDelay:   opts.SaveDelay,
	}

	m.Header = components.NewHeader(bus, locale, func(code domain.LanguageCode) tea.Cmd {
		return PersistLanguageCmd(svc, code)
	})
	m.Panel = components.NewSettingsPanel(bus, locale, func(s domain.CompressionSettings) tea.Cmd {
		if !svc.Apply(s) {
			return nil
		}
		return SettingsChangedCmd(svc.Current())
	})
	m.syncPanel()
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Disabled reports whether the settings panel accepts input
func (m Model) Disabled() bool {
	return m.readOnly || m.locked
}

// Bus exposes the pointer event bus
func (m Model) Bus() *events.Bus {
	return m.bus
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The panel always renders the service's settings
	m.syncPanel()

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.Help.Width = msg.Width

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKeyMsg(msg)
		cmds = append(cmds, cmd)

	case SettingsChangedMsg:
		m.saveGen++
		m.pending = true
		cmds = append(cmds, saveAfterCmd(m.saveGen, m.saveDelay))

	case saveTickMsg:
		if msg.gen == m.saveGen && m.pending {
			m.pending = false
			m.setStatus(m.Locale.Translate(domain.MsgSaving), false)
			cmds = append(cmds, SaveSettingsCmd(m.SettingsSvc))
		}

	case SettingsSavedMsg:
		m.setStatus(m.Locale.Translate(domain.MsgSaved), false)
		cmds = append(cmds, ClearStatusCmd(statusDuration))

	case LanguageSavedMsg:
		m.setStatus(m.Locale.Translate(domain.MsgLanguageSaved), false)
		cmds = append(cmds, ClearStatusCmd(statusDuration))

	case ErrMsg:
		m.setStatus(m.Locale.Translate(domain.MsgSaveFailed)+": "+msg.Error(), true)
		cmds = append(cmds, ClearStatusCmd(2*statusDuration))

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
	}

	m.syncPanel()
	m.relayout()
	return m, tea.Batch(cmds...)
}

// handleMouse publishes to process-wide listeners first, then routes presses
// to the components under the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ev, ok := events.FromMouse(msg)
	if !ok {
		return nil
	}

	ev, cmd := m.bus.Publish(ev)
	if ev.Kind != events.Press {
		return cmd
	}

	// Listeners may have changed state the components read
	m.syncPanel()
	return tea.Batch(cmd, m.Header.HandlePress(ev), m.Panel.HandlePress(ev))
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	// An open language menu takes every key
	if handled, cmd := m.Header.HandleKey(msg); handled {
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		cmd := m.quit()
		return m, cmd

	case key.Matches(msg, Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(msg, Keys.Language):
		m.Header.ToggleMenu()
		return m, nil

	case key.Matches(msg, Keys.Lock):
		if m.readOnly {
			return m, nil
		}
		m.locked = !m.locked
		m.syncPanel()
		return m, nil

	case key.Matches(msg, Keys.Reset):
		if m.Disabled() || !m.SettingsSvc.Apply(m.SettingsSvc.Defaults()) {
			return m, nil
		}
		return m, SettingsChangedCmd(m.SettingsSvc.Current())
	}

	_, cmd := m.Panel.HandleKey(msg)
	return m, cmd
}

// quit releases pointer listeners and flushes a pending save before exiting
func (m *Model) quit() tea.Cmd {
	m.Header.Close()
	m.Panel.Close()
	if m.pending {
		m.pending = false
		return tea.Sequence(SaveSettingsCmd(m.SettingsSvc), tea.Quit)
	}
	return tea.Quit
}

func (m *Model) setStatus(text string, isErr bool) {
	m.StatusMsg = text
	m.StatusIsErr = isErr
}

func (m Model) syncPanel() {
	m.Panel.SetProps(m.SettingsSvc.Current(), m.Disabled())
}
