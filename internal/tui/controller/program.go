package controller

import (
	"context"

	"onboardctl/internal/onboarding"
	"onboardctl/internal/settings"
	"onboardctl/internal/tui/model"
	"onboardctl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgramOptions configures NewProgram.
type ProgramOptions struct {
	Title      string
	ConnectURL string
	DebugMode  bool
	LogChannel <-chan logging.LogEntry
	// Context, if set, stops the program when done.
	Context context.Context
}

// NewProgram creates the wizard program on the alternate screen.
func NewProgram(nav *onboarding.Navigator, src settings.Source, opts ProgramOptions) *tea.Program {
	m := model.InitializeModel(nav, src, opts.Title, opts.ConnectURL, opts.DebugMode, opts.LogChannel)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		progOpts = append(progOpts, tea.WithContext(opts.Context))
	}
	return tea.NewProgram(NewAppModel(m), progOpts...)
}
