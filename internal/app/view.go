package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/azrael8576/Reorderable/internal/list"
	"github.com/azrael8576/Reorderable/internal/ui/common"
)

// Chrome layout: a title row and a blank row above the list, a blank
// row and a hint row below it, with a one-cell gutter on each side.
const (
	listOriginX = 1
	listOriginY = 2
	chromeRows  = 4
)

func (a *App) listWidth() int {
	w := a.width - 2*listOriginX
	if w < 0 {
		w = 0
	}
	return w
}

func (a *App) listHeight() int {
	h := a.height - chromeRows
	if h < 0 {
		h = 0
	}
	return h
}

var footerStyle = lipgloss.NewStyle().Padding(0, 1)

// View renders the application.
func (a *App) View() tea.View {
	baseView := func() tea.View {
		var view tea.View
		view.AltScreen = true
		view.MouseMode = tea.MouseModeCellMotion
		view.BackgroundColor = common.ColorBackground
		view.ForegroundColor = common.ColorForeground
		return view
	}

	if a.quitting {
		view := baseView()
		view.SetContent("Goodbye!\n")
		return view
	}

	if !a.ready {
		view := baseView()
		view.SetContent("Loading...")
		return view
	}

	body := a.indentBody(a.list.View())
	content := lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		"",
		body,
		"",
		a.renderFooter(),
	)

	view := baseView()
	if a.zones != nil {
		content = a.zones.Scan(content)
	}
	view.SetContent(content)
	return view
}

func (a *App) renderHeader() string {
	title := a.styles.Title.Padding(0, 1).Render("Reorderable")
	meta := a.itemsPath
	if meta == "" {
		meta = "sample list"
	}
	if a.dirty {
		meta += " *"
	}
	meta = common.TruncateToWidth(meta, a.width-lipgloss.Width(title)-1)
	return title + a.styles.Muted.Render(meta)
}

func (a *App) renderFooter() string {
	if a.toast.Visible() {
		return footerStyle.Render(a.toast.View())
	}
	if !a.store.Settings().ShowKeymapHints {
		return ""
	}
	var parts []string
	for _, entry := range list.HelpEntries() {
		parts = append(parts, a.styles.HelpKey.Render(entry[0])+" "+a.styles.HelpDesc.Render(entry[1]))
	}
	parts = append(parts, a.styles.HelpKey.Render("q")+" "+a.styles.HelpDesc.Render("quit"))
	line := strings.Join(parts, a.styles.HelpSeparator.Render(" · "))
	return footerStyle.MaxWidth(a.width).Render(line)
}

// indentBody shifts the list view right by the gutter so its rows line
// up with the screen coordinates handed to the list via SetOffset.
func (a *App) indentBody(body string) string {
	if listOriginX == 0 || body == "" {
		return body
	}
	pad := strings.Repeat(" ", listOriginX)
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
