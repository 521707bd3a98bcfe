// Package styles holds the lipgloss styles used to draw the grid.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains every style the grid view draws with. Build it from a
// palette so themes can be swapped without touching the renderer.
type Styles struct {
	Header         lipgloss.Style
	HeaderResizing lipgloss.Style
	Border         lipgloss.Style
	BorderResizing lipgloss.Style
	Rule           lipgloss.Style

	Cell         lipgloss.Style
	RowSelected  lipgloss.Style
	CellSelected lipgloss.Style
	Cursor       lipgloss.Style
	RowID        lipgloss.Style
	Checkbox     lipgloss.Style

	StatusBar lipgloss.Style
	StatusKey lipgloss.Style
	Message   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
}

// New builds styles from p.
func New(p *ColorPalette) *Styles {
	if p == nil {
		p = DefaultPalette()
	}
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		HeaderResizing: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Resize),
		Border:         lipgloss.NewStyle().Foreground(p.Border),
		BorderResizing: lipgloss.NewStyle().Foreground(p.Resize).Bold(true),
		Rule:           lipgloss.NewStyle().Foreground(p.Border),

		Cell: lipgloss.NewStyle().Foreground(p.Text),
		RowSelected: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.RowSelected),
		CellSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.CellSelected),
		Cursor: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Cursor),
		RowID:    lipgloss.NewStyle().Foreground(p.Muted),
		Checkbox: lipgloss.NewStyle().Foreground(p.Secondary),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface),
		StatusKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			Background(p.Surface),
		Message: lipgloss.NewStyle().Foreground(p.Secondary),
		Warning: lipgloss.NewStyle().Foreground(p.Warning),
		Error:   lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(p.Muted),
	}
}

// ForTheme builds styles for a built-in theme, falling back to the default
// palette for unknown names.
func ForTheme(name string) *Styles {
	p, err := GetPalette(name)
	if err != nil {
		p = DefaultPalette()
	}
	return New(p)
}
