package ui

import (
	"strings"

	"docker-tui/internal/types"
)

// View renders the UI
func (m *Model) View() string {
	if m.err != nil {
		return ""
	}

	// The spinner owns the whole screen while it runs
	if m.actionInProgress && !m.canvas.Empty() {
		return m.canvas.View()
	}

	var b strings.Builder

	// Row 0 is blank, the title sits on row 1, the list starts at titleSpace
	b.WriteString("\n")
	b.WriteString(m.title.WithWidth(m.width).View())
	b.WriteString(strings.Repeat("\n", titleSpace-1))

	options := m.options()
	if len(options) == 0 {
		b.WriteString(strings.Repeat(" ", padding))
		b.WriteString(m.emptyMessage())
	} else {
		start, end := m.getVisibleRange(len(options))
		b.WriteString(m.list.
			WithWidth(m.width).
			SetOptions(options).
			SetSelected(m.selectedRow).
			SetVisibleRange(start, end).
			View())
	}

	b.WriteString(strings.Repeat("\n", footerGap))
	b.WriteString(m.footer.WithWidth(m.width).SetStatusMessage(m.statusMessage).View())

	return b.String()
}

// getVisibleRange returns the window of rows that fits the viewport
func (m *Model) getVisibleRange(total int) (start, end int) {
	start = m.scrollOffset
	end = m.scrollOffset + m.viewportHeight
	if end > total {
		end = total
	}
	if start > end {
		start = end
	}
	return start, end
}

// emptyMessage is shown instead of an empty list
func (m *Model) emptyMessage() string {
	if m.loading {
		return "Loading..."
	}
	if m.state == types.StateNetworkAction {
		return "No containers found (press <esc> for the menu)"
	}
	return "No running containers found (press <esc> for the menu)"
}
