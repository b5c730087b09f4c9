package model

import (
	"onboardctl/internal/onboarding"
	"onboardctl/pkg/logging"
)

// SettingsPrimedMsg reports the end of a settings prime.
type SettingsPrimedMsg struct {
	Connected bool
	Err       error
}

// SaveResultMsg reports the end of a save action started on From.
type SaveResultMsg struct {
	From     onboarding.Step
	NextStep onboarding.Step
	Err      error
}

// NewLogEntryMsg carries a log entry from pkg/logging.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClearStatusBarMsg clears the status bar if no newer message replaced it.
type ClearStatusBarMsg struct {
	Seq int
}
