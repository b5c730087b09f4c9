package components

import (
	"strings"

	"onboardctl/internal/tui/design"
	"onboardctl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	RightText   string
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a status message. An empty message keeps the left and
// right texts visible.
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.style()
	if s.Width <= 0 {
		content := s.Message
		if content == "" {
			content = strings.TrimSpace(s.LeftText + " " + s.RightText)
		}
		return style.Render(content)
	}

	inner := s.Width - design.SpaceSM*2
	var content string
	switch {
	case s.Message != "":
		content = Truncate(s.Message, inner)
	case s.LeftText != "" && s.RightText != "":
		padding := inner - lipgloss.Width(s.LeftText) - lipgloss.Width(s.RightText)
		if padding > 0 {
			content = s.LeftText + strings.Repeat(" ", padding) + s.RightText
		} else {
			content = Truncate(s.LeftText, inner)
		}
	default:
		content = Truncate(s.LeftText+s.RightText, inner)
	}

	return style.Width(s.Width).MaxWidth(s.Width).Render(content)
}

func (s *StatusBar) style() lipgloss.Style {
	if s.Message == "" {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarInfoStyle
	}
}
