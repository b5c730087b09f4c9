package components

import (
	"strings"

	"onboardctl/internal/tui/design"
)

// MenuRow is one selectable line.
type MenuRow struct {
	Label string
	// Checked is rendered as a checkbox when Checkable is set.
	Checked   bool
	Checkable bool
}

// Menu renders a vertical list with a cursor.
type Menu struct {
	Rows   []MenuRow
	Cursor int
	Width  int
}

// Render returns the styled list, one row per line.
func (m Menu) Render() string {
	lines := make([]string, 0, len(m.Rows))
	for i, row := range m.Rows {
		prefix := "  "
		style := design.ListItemStyle
		if i == m.Cursor {
			prefix = "> "
			style = design.ListItemSelectedStyle
		}
		label := row.Label
		if row.Checkable {
			box := "[ ] "
			if row.Checked {
				box = "[x] "
			}
			label = box + label
		}
		text := prefix + label
		if m.Width > 0 {
			text = Truncate(text, m.Width-design.SpaceSM)
		}
		lines = append(lines, style.Render(text))
	}
	return strings.Join(lines, "\n")
}
