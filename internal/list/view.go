package list

import (
	"fmt"
	"strings"

	"github.com/azrael8576/Reorderable/internal/ui/common"
)

// View renders the visible rows.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	contentWidth := m.width - 2 // row styles carry 2 cells of left padding
	if contentWidth < 1 {
		contentWidth = 1
	}

	top := m.surface.Offset()
	var b strings.Builder
	for row := 0; row < m.height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		idx := top + row
		if idx < 0 || idx >= len(m.items) {
			continue
		}
		item := m.items[idx]

		style := m.styles.Row
		title := item.Title
		switch {
		case m.drag.active && idx == m.drag.index:
			style = m.styles.DraggedRow
			title = "≡ " + title
		case idx == m.cursor && m.focused:
			style = m.styles.SelectedRow
		}

		rendered := style.Render(common.PadToWidth(title, contentWidth))
		if m.zone != nil {
			rendered = m.zone.Mark(rowZoneID(idx), rendered)
		}
		b.WriteString(rendered)
	}
	return b.String()
}

func rowZoneID(i int) string {
	return fmt.Sprintf("list-row-%d", i)
}
