package model

import (
	"onboardctl/internal/onboarding"
	"onboardctl/internal/settings"
	"onboardctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeWizard AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeWizard:
		return "Wizard"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// MaxActivityLogLines caps the in-memory activity log.
const MaxActivityLogLines = 500

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Toggle    key.Binding
	Save      key.Binding
	Back      key.Binding
	Recheck   key.Binding
	CopyURL   key.Binding
	ToggleLog key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Save, k.Back, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Toggle},
		{k.Save, k.Back, k.Recheck, k.CopyURL},
		{k.ToggleLog, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Recheck: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-check connection"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy connect URL"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "activity log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model represents the state of the wizard TUI.
type Model struct {
	Navigator  *onboarding.Navigator
	Settings   settings.Source
	Title      string
	ConnectURL string

	CurrentAppMode AppMode
	Keys           KeyMap
	Help           help.Model
	Spinner        spinner.Model

	// Cursor indexes the current screen's menu or toggle list.
	Cursor int
	// Checking is set while a settings prime is in flight.
	Checking bool
	// Saving is set while a save action is in flight.
	Saving bool
	// Finished is set when the merchant leaves from the completion screen.
	Finished bool

	StatusBarMessage     string
	StatusBarMessageType MessageType
	statusBarSeq         int

	ActivityLog []string
	LogViewport viewport.Model
	LogChannel  <-chan logging.LogEntry
	DebugMode   bool

	Width  int
	Height int
}

// Frame renders the navigator's current state under the model's title.
func (m *Model) Frame() onboarding.Frame {
	return m.Navigator.Frame(m.Title)
}

// AppendLog adds a line to the activity log, dropping the oldest lines
// beyond MaxActivityLogLines.
func (m *Model) AppendLog(line string) {
	m.ActivityLog = append(m.ActivityLog, line)
	if over := len(m.ActivityLog) - MaxActivityLogLines; over > 0 {
		m.ActivityLog = m.ActivityLog[over:]
	}
}
