package controller

import (
	"strings"

	"onboardctl/internal/onboarding"
	"onboardctl/internal/tui/model"
	"onboardctl/pkg/logging"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

func handleKeyMsg(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.Quit) {
		m.CurrentAppMode = model.ModeQuitting
		return m, tea.Quit
	}

	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		if key.Matches(msg, m.Keys.Help) || msg.String() == "esc" {
			m.CurrentAppMode = model.ModeWizard
		}
		return m, nil
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil
	case key.Matches(msg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return m, nil
	case key.Matches(msg, m.Keys.CopyURL):
		return copyConnectURL(m)
	}

	// Navigation waits for an in-flight save.
	if m.Saving {
		return m, nil
	}

	frame := m.Frame()
	spec := model.ScreenSpec{}
	if frame.Content != nil {
		spec = model.SpecFor(*frame.Content)
	}

	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < spec.Items()-1 {
			m.Cursor++
		}
	case key.Matches(msg, m.Keys.Back):
		return goBack(m, frame.Header)
	case key.Matches(msg, m.Keys.Recheck):
		return recheck(m)
	case key.Matches(msg, m.Keys.Save):
		return save(m, frame)
	case key.Matches(msg, m.Keys.Toggle):
		return toggle(m, spec)
	case key.Matches(msg, m.Keys.Enter):
		return selectItem(m, frame, spec)
	}
	return m, nil
}

func handleLogOverlayKey(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.ToggleLog), msg.String() == "esc":
		m.CurrentAppMode = model.ModeWizard
		return m, nil
	case msg.String() == "y":
		if err := clipboardWrite(strings.Join(m.ActivityLog, "\n")); err != nil {
			logging.Error(controllerSubsystem, err, "failed to copy logs")
			return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusDuration)
		}
		return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusDuration)
	}
	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(msg)
	return m, cmd
}

func copyConnectURL(m *model.Model) (*model.Model, tea.Cmd) {
	if m.ConnectURL == "" {
		return m, nil
	}
	if err := clipboardWrite(m.ConnectURL); err != nil {
		logging.Error(controllerSubsystem, err, "failed to copy connect URL")
		return m, m.SetStatusMessage("Copy failed, open "+m.ConnectURL, model.StatusBarError, statusDuration)
	}
	return m, m.SetStatusMessage("Connect URL copied to clipboard", model.StatusBarSuccess, statusDuration)
}

// goBack uses the header's back action, which routes through the
// navigator's setter.
func goBack(m *model.Model, h onboarding.Header) (*model.Model, tea.Cmd) {
	if !h.CanGoBack() {
		return m, m.SetStatusMessage("Nothing to go back to", model.StatusBarInfo, statusDuration)
	}
	return m, stepChanged(m, h.SetStep(h.BackStep))
}

func recheck(m *model.Model) (*model.Model, tea.Cmd) {
	if m.Checking {
		return m, nil
	}
	m.Checking = true
	return m, tea.Batch(m.Spinner.Tick, model.PrimeSettingsCmd(m.Settings))
}

func save(m *model.Model, frame onboarding.Frame) (*model.Model, tea.Cmd) {
	action, ok := frame.Save()
	if !ok {
		return m, nil
	}
	m.Saving = true
	logging.Info(controllerSubsystem, "saving %s settings from %s", action.Decorator, frame.Header.Step)
	return m, tea.Batch(m.Spinner.Tick, model.SaveCmd(m.Settings, frame.Header.Step, action))
}

func toggle(m *model.Model, spec model.ScreenSpec) (*model.Model, tea.Cmd) {
	i := m.Cursor - len(spec.Menu)
	if i < 0 || i >= len(spec.Toggles) {
		return m, nil
	}
	t := spec.Toggles[i]
	if _, err := m.Settings.Toggle(t.Doc, t.Key); err != nil {
		logging.Warn(controllerSubsystem, "cannot change %s: %v", t.Key, err)
		return m, m.SetStatusMessage("Settings not loaded yet, press r to retry", model.StatusBarWarning, statusDuration)
	}
	return m, nil
}

// selectItem follows a menu entry, toggles a setting, or rechecks the
// connection on the connect screen.
func selectItem(m *model.Model, frame onboarding.Frame, spec model.ScreenSpec) (*model.Model, tea.Cmd) {
	if frame.Content == nil {
		return m, nil
	}
	if frame.Content.Step == onboarding.StepConnect {
		return recheck(m)
	}
	if m.Cursor < len(spec.Menu) {
		item := spec.Menu[m.Cursor]
		if item.Target == "" {
			m.Finished = true
			m.CurrentAppMode = model.ModeQuitting
			logging.Info(controllerSubsystem, "onboarding finished")
			return m, tea.Quit
		}
		return m, stepChanged(m, frame.SetStep(item.Target))
	}
	return toggle(m, spec)
}
