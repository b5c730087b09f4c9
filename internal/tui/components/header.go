package components

import (
	"strings"

	"onboardctl/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// Header is the wizard header: title and step on the left, the back hint
// on the right when going back is possible.
type Header struct {
	Title    string
	Subtitle string
	BackHint string
	Width    int
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{Title: title, Width: 80}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithBackHint shows where the back action leads.
func (h *Header) WithBackHint(hint string) *Header {
	h.BackHint = hint
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	left := h.Title
	if h.Subtitle != "" {
		if left != "" {
			left += " "
		}
		left += design.TextSecondaryStyle.Render("· " + h.Subtitle)
	}

	if h.Width <= 0 {
		// Width is unknown until the first window size message.
		content := left
		if h.BackHint != "" {
			content += "  " + h.BackHint
		}
		return design.HeaderStyle.Render(content)
	}

	available := h.Width - design.SpaceSM*2
	content := left
	if h.BackHint != "" {
		leftWidth := lipgloss.Width(left)
		rightWidth := lipgloss.Width(h.BackHint)
		if leftWidth+rightWidth+2 <= available {
			content = left + strings.Repeat(" ", available-leftWidth-rightWidth) + h.BackHint
		}
	}
	if lipgloss.Width(content) > available {
		// Styled subtitles do not survive cell truncation; fall back to plain text.
		plain := h.Title
		if h.Subtitle != "" {
			plain += " · " + h.Subtitle
		}
		content = Truncate(plain, available)
	}

	return design.HeaderStyle.
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}
