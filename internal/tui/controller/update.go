package controller

import (
	"time"

	"onboardctl/internal/onboarding"
	"onboardctl/internal/tui/model"
	"onboardctl/internal/tui/view"
	"onboardctl/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerSubsystem = "Controller"

const statusDuration = 4 * time.Second

// Update routes a message to its handler and returns the commands to run.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg, model.NewLogEntryMsg:
	default:
		if m.DebugMode {
			logging.Debug(controllerSubsystem, "received %T", msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)
	case model.SettingsPrimedMsg:
		return handleSettingsPrimedMsg(m, msg)
	case model.SaveResultMsg:
		return handleSaveResultMsg(m, msg)
	case model.NewLogEntryMsg:
		return handleNewLogEntryMsg(m, msg)
	case model.ClearStatusBarMsg:
		m.ClearStatusMessage(msg.Seq)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width
	m.LogViewport.Width, m.LogViewport.Height = view.LogOverlaySize(msg.Width, msg.Height)
	refreshLogViewport(m)
	return m, nil
}

// handleSettingsPrimedMsg applies the auto-advance rule once fresh settings
// are known.
func handleSettingsPrimedMsg(m *model.Model, msg model.SettingsPrimedMsg) (*model.Model, tea.Cmd) {
	m.Checking = false
	var cmds []tea.Cmd
	if msg.Err != nil {
		logging.Error(controllerSubsystem, msg.Err, "failed to load settings")
		cmds = append(cmds, m.SetStatusMessage("Could not load settings: "+msg.Err.Error(), model.StatusBarError, statusDuration))
	}
	if m.Navigator.ObserveConnection(msg.Connected) {
		m.Cursor = 0
		cmds = append(cmds, m.SetStatusMessage("Square account connected", model.StatusBarSuccess, statusDuration))
	}
	return m, tea.Batch(cmds...)
}

// handleSaveResultMsg completes a save by moving to the save's next step,
// unless the wizard already moved elsewhere.
func handleSaveResultMsg(m *model.Model, msg model.SaveResultMsg) (*model.Model, tea.Cmd) {
	m.Saving = false
	if msg.Err != nil {
		logging.Error(controllerSubsystem, msg.Err, "saving %s failed", msg.From)
		return m, m.SetStatusMessage("Save failed: "+msg.Err.Error(), model.StatusBarError, statusDuration)
	}
	logging.Info(controllerSubsystem, "saved settings from %s", msg.From)
	var prime tea.Cmd
	if m.Navigator.Step() == msg.From {
		prime = moveTo(m, msg.NextStep)
	}
	return m, tea.Batch(prime, m.SetStatusMessage("Settings saved", model.StatusBarSuccess, statusDuration))
}

func handleNewLogEntryMsg(m *model.Model, msg model.NewLogEntryMsg) (*model.Model, tea.Cmd) {
	m.AppendLog(msg.Entry.String())
	refreshLogViewport(m)
	return m, model.ListenForLogsCmd(m.LogChannel)
}

// moveTo changes the step through the navigator. A change resets the
// cursor and re-primes settings in the background.
func moveTo(m *model.Model, step onboarding.Step) tea.Cmd {
	return stepChanged(m, m.Navigator.SetStep(step))
}

func stepChanged(m *model.Model, changed bool) tea.Cmd {
	if !changed {
		return nil
	}
	m.Cursor = 0
	return model.PrimeSettingsCmd(m.Settings)
}

func refreshLogViewport(m *model.Model) {
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	if atBottom {
		m.LogViewport.GotoBottom()
	}
}
