package styles

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/datagrid/internal/errors"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
	}
}

// IsValidTheme checks if a theme name is a built-in theme.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (header text, checkboxes)
	Primary lipgloss.Color
	// Secondary accent color (selected-row marker, success messages)
	Secondary lipgloss.Color
	// Warning color (reload notices)
	Warning lipgloss.Color
	// Error color (load errors)
	Error lipgloss.Color
	// Muted color (row ids, help text)
	Muted lipgloss.Color
	// Surface color (status bar background)
	Surface lipgloss.Color
	// Text color (cell text)
	Text lipgloss.Color
	// Border color (column borders and rules)
	Border lipgloss.Color

	// Grid-specific colors
	RowSelected  lipgloss.Color // background of selected rows
	CellSelected lipgloss.Color // background of selected cells
	Cursor       lipgloss.Color // background of the last clicked row
	Resize       lipgloss.Color // border and header of the column being resized
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500

		RowSelected:  lipgloss.Color("#312E81"), // Indigo-900
		CellSelected: lipgloss.Color("#854D0E"), // Dark yellow
		Cursor:       lipgloss.Color("#374151"), // Gray-700
		Resize:       lipgloss.Color("#FB923C"), // Orange
	}
}

// MonokaiPalette returns the classic Monokai editor theme palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#F92672"), // Monokai pink/magenta
		Secondary: lipgloss.Color("#A6E22E"), // Monokai green
		Warning:   lipgloss.Color("#E6DB74"), // Monokai yellow
		Error:     lipgloss.Color("#F92672"), // Monokai pink (same as primary)
		Muted:     lipgloss.Color("#75715E"), // Monokai comment gray
		Surface:   lipgloss.Color("#272822"), // Monokai background
		Text:      lipgloss.Color("#F8F8F2"), // Monokai foreground
		Border:    lipgloss.Color("#49483E"), // Monokai selection

		RowSelected:  lipgloss.Color("#49483E"), // Selection
		CellSelected: lipgloss.Color("#75715E"), // Comment gray
		Cursor:       lipgloss.Color("#3E3D32"), // Line highlight
		Resize:       lipgloss.Color("#FD971F"), // Orange
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Dracula purple
		Secondary: lipgloss.Color("#50FA7B"), // Dracula green
		Warning:   lipgloss.Color("#F1FA8C"), // Dracula yellow
		Error:     lipgloss.Color("#FF5555"), // Dracula red
		Muted:     lipgloss.Color("#6272A4"), // Dracula comment
		Surface:   lipgloss.Color("#282A36"), // Dracula background
		Text:      lipgloss.Color("#F8F8F2"), // Dracula foreground
		Border:    lipgloss.Color("#44475A"), // Dracula selection

		RowSelected:  lipgloss.Color("#44475A"), // Selection
		CellSelected: lipgloss.Color("#6272A4"), // Comment
		Cursor:       lipgloss.Color("#343746"), // Current line
		Resize:       lipgloss.Color("#FFB86C"), // Orange
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Nord frost (cyan)
		Secondary: lipgloss.Color("#A3BE8C"), // Nord aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Nord aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Nord aurora red
		Muted:     lipgloss.Color("#4C566A"), // Nord polar night 3
		Surface:   lipgloss.Color("#2E3440"), // Nord polar night 0
		Text:      lipgloss.Color("#ECEFF4"), // Nord snow storm 2
		Border:    lipgloss.Color("#3B4252"), // Nord polar night 1

		RowSelected:  lipgloss.Color("#434C5E"), // Polar night 2
		CellSelected: lipgloss.Color("#5E81AC"), // Frost deep blue
		Cursor:       lipgloss.Color("#3B4252"), // Polar night 1
		Resize:       lipgloss.Color("#D08770"), // Aurora orange
	}
}

// GetPalette returns the palette for a built-in theme.
func GetPalette(name string) (*ColorPalette, error) {
	switch ThemeName(strings.ToLower(strings.TrimSpace(name))) {
	case ThemeDefault, "":
		return DefaultPalette(), nil
	case ThemeMonokai:
		return MonokaiPalette(), nil
	case ThemeDracula:
		return DraculaPalette(), nil
	case ThemeNord:
		return NordPalette(), nil
	default:
		return nil, errors.NewNotFoundError("theme", name)
	}
}
