package common

import "charm.land/lipgloss/v2"

// Styles contains all the application styles
type Styles struct {
	// Text hierarchy
	Title lipgloss.Style
	Muted lipgloss.Style

	// List rows
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	DraggedRow  lipgloss.Style

	// Help bar
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Toast notifications
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
}

// DefaultStyles returns the default application styles using Tokyo Night palette
func DefaultStyles() Styles {
	toast := lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Row: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(ColorForeground),

		SelectedRow: lipgloss.NewStyle().
			PaddingLeft(2).
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorSelection),

		DraggedRow: lipgloss.NewStyle().
			PaddingLeft(2).
			Bold(true).
			Foreground(ColorBackground).
			Background(ColorPrimary),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorInfo),

		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorMuted),

		HelpSeparator: lipgloss.NewStyle().
			Foreground(ColorBorder),

		ToastSuccess: toast.
			Foreground(ColorBackground).
			Background(ColorSuccess),

		ToastError: toast.
			Foreground(ColorBackground).
			Background(ColorError),

		ToastWarning: toast.
			Foreground(ColorBackground).
			Background(ColorWarning),

		ToastInfo: toast.
			Foreground(ColorBackground).
			Background(ColorInfo),
	}
}
