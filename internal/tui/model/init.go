package model

import (
	"onboardctl/internal/onboarding"
	"onboardctl/internal/settings"
	"onboardctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// InitializeModel builds the wizard model. The first settings prime is
// started by Init.
func InitializeModel(
	nav *onboarding.Navigator,
	src settings.Source,
	title, connectURL string,
	debugMode bool,
	logChannel <-chan logging.LogEntry,
) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		Navigator:      nav,
		Settings:       src,
		Title:          title,
		ConnectURL:     connectURL,
		CurrentAppMode: ModeWizard,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		Spinner:        sp,
		Checking:       true,
		LogViewport:    viewport.New(0, 0),
		LogChannel:     logChannel,
		DebugMode:      debugMode,
	}
}

// Init starts the spinner, the first settings prime and the log listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		PrimeSettingsCmd(m.Settings),
		ListenForLogsCmd(m.LogChannel),
	)
}
