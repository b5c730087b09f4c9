package view

import (
	"strings"

	"onboardctl/internal/tui/components"
	"onboardctl/internal/tui/design"
	"onboardctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderHelpOverlay(m *model.Model) string {
	title := design.TitleStyle.Render("KEYBOARD SHORTCUTS")
	body := m.Help.FullHelpView(m.Keys.FullHelp())
	container := design.OverlayStyle.Render(title + "\n" + body + "\n\nesc/? close")
	if m.Width <= 0 || m.Height <= 0 {
		return container
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

func renderLogOverlay(m *model.Model) string {
	title := design.TitleStyle.Render("Activity Log  (↑/↓ scroll  •  y copy  •  esc close)")
	content := lipgloss.JoinVertical(lipgloss.Left, title, m.LogViewport.View())
	overlay := design.OverlayStyle.Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, overlay, renderStatusBar(m, m.Navigator.Step()))
}

// LogOverlaySize returns the viewport size of the log overlay for a
// terminal of the given size.
func LogOverlaySize(width, height int) (int, int) {
	w := width - design.OverlayStyle.GetHorizontalFrameSize()
	// title, its margin and the status bar
	h := height - design.OverlayStyle.GetVerticalFrameSize() - 3
	return max(w, 0), max(h, 0)
}

// PrepareLogContent styles activity log lines for the log viewport,
// truncating each to width cells.
func PrepareLogContent(lines []string, width int) string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if width > 0 {
			line = components.Truncate(line, width)
		}
		out = append(out, logLineStyle(line).Render(line))
	}
	return strings.Join(out, "\n")
}

func logLineStyle(line string) lipgloss.Style {
	switch {
	case strings.Contains(line, "[ERROR]"):
		return design.LogErrorStyle
	case strings.Contains(line, "[WARN]"):
		return design.LogWarnStyle
	case strings.Contains(line, "[DEBUG]"):
		return design.LogDebugStyle
	default:
		return design.LogInfoStyle
	}
}
