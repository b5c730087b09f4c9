package view

import (
	"strings"

	"onboardctl/internal/onboarding"
	"onboardctl/internal/tui/components"
	"onboardctl/internal/tui/design"
	"onboardctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		if m.Finished {
			return design.TextSuccessStyle.Render("Onboarding complete.") + "\n"
		}
		return ""
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		return renderWizard(m)
	}
}

func renderWizard(m *model.Model) string {
	frame := m.Frame()

	sections := []string{renderHeader(m, frame.Header)}
	// Steps without a screen render the header alone.
	if frame.Content != nil {
		sections = append(sections, renderScreen(m, *frame.Content))
	}
	sections = append(sections, m.Help.ShortHelpView(m.Keys.ShortHelp()))
	sections = append(sections, renderStatusBar(m, frame.Header.Step))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHeader(m *model.Model, h onboarding.Header) string {
	header := components.NewHeader(h.Title).
		WithSubtitle(h.Step.Label()).
		WithWidth(m.Width)
	if h.CanGoBack() {
		header.WithBackHint("esc: " + h.BackStep.Label())
	}
	return header.Render()
}

func renderStatusBar(m *model.Model, step onboarding.Step) string {
	return components.NewStatusBar(m.Width).
		WithLeftText(string(step)).
		WithRightText("? help").
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}

func renderScreen(m *model.Model, screen onboarding.Screen) string {
	spec := model.SpecFor(screen)

	lines := []string{design.TitleStyle.Render(screen.Step.Label())}
	if spec.Intro != "" {
		lines = append(lines, design.TextSecondaryStyle.Render(spec.Intro), "")
	}
	if screen.Step == onboarding.StepConnect {
		lines = append(lines, renderConnection(m)...)
	}
	if rows := menuRows(m, spec); len(rows) > 0 {
		lines = append(lines, components.Menu{Rows: rows, Cursor: m.Cursor, Width: contentWidth(m)}.Render())
	}
	if screen.Decorated() {
		lines = append(lines, renderSaveButton(m))
	}

	style := design.ContentStyle
	if w := contentWidth(m); w > 0 {
		style = style.Width(w)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func renderConnection(m *model.Model) []string {
	lines := []string{"Connect page: " + m.ConnectURL}
	switch {
	case m.Checking:
		lines = append(lines, m.Spinner.View()+" Checking connection…")
	case m.Settings != nil && m.Settings.IsConnected():
		lines = append(lines, design.TextSuccessStyle.Render("Connected"))
	default:
		lines = append(lines, design.TextWarningStyle.Render("Not connected yet. Press r to check again."))
	}
	return lines
}

func menuRows(m *model.Model, spec model.ScreenSpec) []components.MenuRow {
	rows := make([]components.MenuRow, 0, spec.Items())
	for _, item := range spec.Menu {
		rows = append(rows, components.MenuRow{Label: item.Label})
	}
	for _, t := range spec.Toggles {
		checked := m.Settings != nil && m.Settings.Flag(t.Doc, t.Key)
		rows = append(rows, components.MenuRow{Label: t.Label, Checkable: true, Checked: checked})
	}
	return rows
}

func renderSaveButton(m *model.Model) string {
	if m.Saving {
		return design.ButtonDisabledStyle.Render(m.Spinner.View() + " Saving…")
	}
	return design.ButtonStyle.Render("Save (s)")
}

// contentWidth is the inner width of the content box, or 0 when the
// terminal size is not known yet.
func contentWidth(m *model.Model) int {
	w := m.Width - design.ContentStyle.GetHorizontalFrameSize()
	if w < 0 {
		return 0
	}
	return w
}
