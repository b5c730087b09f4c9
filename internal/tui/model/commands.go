package model

import (
	"context"
	"time"

	"onboardctl/internal/onboarding"
	"onboardctl/internal/settings"
	"onboardctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	primeTimeout = 30 * time.Second
	saveTimeout  = 30 * time.Second
)

// PrimeSettingsCmd fetches settings into the shared store.
func PrimeSettingsCmd(src settings.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), primeTimeout)
		defer cancel()
		err := src.Prime(ctx)
		return SettingsPrimedMsg{Connected: src.IsConnected(), Err: err}
	}
}

// SaveCmd runs the save action of a decorated screen shown for from.
func SaveCmd(src settings.Source, from onboarding.Step, action onboarding.SaveAction) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		var err error
		switch action.Decorator {
		case onboarding.DecoratorGatewaySave:
			err = src.SaveGateway(ctx)
		case onboarding.DecoratorSquareSave:
			err = src.SaveSquare(ctx)
		}
		return SaveResultMsg{From: from, NextStep: action.NextStep, Err: err}
	}
}

// ListenForLogsCmd waits for the next log entry. It returns nil once the
// channel is closed.
func ListenForLogsCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// SetStatusMessage shows msg in the status bar and schedules its removal.
func (m *Model) SetStatusMessage(msg string, msgType MessageType, d time.Duration) tea.Cmd {
	m.statusBarSeq++
	seq := m.statusBarSeq
	m.StatusBarMessage = msg
	m.StatusBarMessageType = msgType
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusBarMsg{Seq: seq}
	})
}

// ClearStatusMessage clears the status bar if seq is still current.
func (m *Model) ClearStatusMessage(seq int) {
	if seq == m.statusBarSeq {
		m.StatusBarMessage = ""
	}
}
