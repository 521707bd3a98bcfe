package styles

import (
	"fmt"
	"os"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/datagrid/internal/errors"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB).
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	// Grid colors (optional - derived from base colors if not specified)
	Grid ThemeGridColors `yaml:"grid,omitempty"`
}

// ThemeGridColors defines selection and resize highlight colors.
type ThemeGridColors struct {
	RowSelected  string `yaml:"row_selected,omitempty"`
	CellSelected string `yaml:"cell_selected,omitempty"`
	Cursor       string `yaml:"cursor,omitempty"`
	Resize       string `yaml:"resize,omitempty"`
}

// hexColorRegex validates hex color format.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("theme file", path).WithCause(err)
		}
		return nil, errors.Wrap(err, "reading theme file")
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, errors.Wrap(err, "parsing theme file")
	}

	if err := theme.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid theme")
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.NewValidationError("theme name is required").WithField("name")
	}
	if t.Version != "1" {
		return errors.NewValidationError("unsupported theme version (supported: 1)").
			WithField("version").WithValue(t.Version)
	}

	required := []struct{ name, color string }{
		{"primary", t.Colors.Primary},
		{"secondary", t.Colors.Secondary},
		{"warning", t.Colors.Warning},
		{"error", t.Colors.Error},
		{"muted", t.Colors.Muted},
		{"surface", t.Colors.Surface},
		{"text", t.Colors.Text},
		{"border", t.Colors.Border},
	}
	for _, c := range required {
		if c.color == "" {
			return errors.NewValidationError(fmt.Sprintf("color '%s' is required", c.name)).WithField("colors." + c.name)
		}
		if !isValidHexColor(c.color) {
			return invalidColor("colors."+c.name, c.color)
		}
	}

	optional := []struct{ name, color string }{
		{"grid.row_selected", t.Colors.Grid.RowSelected},
		{"grid.cell_selected", t.Colors.Grid.CellSelected},
		{"grid.cursor", t.Colors.Grid.Cursor},
		{"grid.resize", t.Colors.Grid.Resize},
	}
	for _, c := range optional {
		if c.color != "" && !isValidHexColor(c.color) {
			return invalidColor("colors."+c.name, c.color)
		}
	}
	return nil
}

func invalidColor(field, value string) error {
	return errors.NewValidationError("invalid color format (expected #RGB or #RRGGBB)").
		WithField(field).WithValue(value)
}

// isValidHexColor checks if a string is a valid hex color.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ToPalette converts the theme file to a ColorPalette. Grid colors that are
// not given fall back to related base colors.
func (t *ThemeFile) ToPalette() *ColorPalette {
	p := &ColorPalette{
		Primary:   lipgloss.Color(t.Colors.Primary),
		Secondary: lipgloss.Color(t.Colors.Secondary),
		Warning:   lipgloss.Color(t.Colors.Warning),
		Error:     lipgloss.Color(t.Colors.Error),
		Muted:     lipgloss.Color(t.Colors.Muted),
		Surface:   lipgloss.Color(t.Colors.Surface),
		Text:      lipgloss.Color(t.Colors.Text),
		Border:    lipgloss.Color(t.Colors.Border),
	}

	p.RowSelected = colorOr(t.Colors.Grid.RowSelected, p.Border)
	p.CellSelected = colorOr(t.Colors.Grid.CellSelected, p.Muted)
	p.Cursor = colorOr(t.Colors.Grid.Cursor, p.Surface)
	p.Resize = colorOr(t.Colors.Grid.Resize, p.Warning)
	return p
}

func colorOr(hex string, fallback lipgloss.Color) lipgloss.Color {
	if hex == "" {
		return fallback
	}
	return lipgloss.Color(hex)
}

// FromPalette builds a theme file describing p.
func FromPalette(name string, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:    name,
		Version: "1",
		Colors: ThemeColors{
			Primary:   string(p.Primary),
			Secondary: string(p.Secondary),
			Warning:   string(p.Warning),
			Error:     string(p.Error),
			Muted:     string(p.Muted),
			Surface:   string(p.Surface),
			Text:      string(p.Text),
			Border:    string(p.Border),
			Grid: ThemeGridColors{
				RowSelected:  string(p.RowSelected),
				CellSelected: string(p.CellSelected),
				Cursor:       string(p.Cursor),
				Resize:       string(p.Resize),
			},
		},
	}
}

// ExportTheme renders a built-in theme as theme file YAML, a starting point
// for a custom theme.
func ExportTheme(name string) ([]byte, error) {
	p, err := GetPalette(name)
	if err != nil {
		return nil, err
	}
	data, err := yaml.Marshal(FromPalette(name, p))
	if err != nil {
		return nil, errors.Wrap(err, "encoding theme")
	}
	return data, nil
}
