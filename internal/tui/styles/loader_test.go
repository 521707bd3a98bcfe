package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Iron-Ham/datagrid/internal/errors"
)

const validTheme = `name: Paper
version: "1"
colors:
  primary: "#112233"
  secondary: "#445566"
  warning: "#778899"
  error: "#AA0000"
  muted: "#999"
  surface: "#FFFFFF"
  text: "#000000"
  border: "#CCCCCC"
  grid:
    resize: "#FF8800"
`

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	return path
}

func TestLoadThemeFile(t *testing.T) {
	theme, err := LoadThemeFile(writeTheme(t, validTheme))
	if err != nil {
		t.Fatalf("LoadThemeFile error: %v", err)
	}
	if theme.Name != "Paper" {
		t.Errorf("Name = %q", theme.Name)
	}

	p := theme.ToPalette()
	if p.Resize != "#FF8800" {
		t.Errorf("Resize = %q, want explicit color", p.Resize)
	}
	if p.RowSelected != p.Border {
		t.Errorf("RowSelected = %q, want fallback to border %q", p.RowSelected, p.Border)
	}
	if p.Cursor != p.Surface {
		t.Errorf("Cursor = %q, want fallback to surface %q", p.Cursor, p.Surface)
	}
}

func TestLoadThemeFile_Missing(t *testing.T) {
	_, err := LoadThemeFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestThemeFile_Validate(t *testing.T) {
	base := func() ThemeFile {
		return ThemeFile{
			Name:    "x",
			Version: "1",
			Colors: ThemeColors{
				Primary: "#111", Secondary: "#222", Warning: "#333", Error: "#444",
				Muted: "#555", Surface: "#666", Text: "#777", Border: "#888",
			},
		}
	}

	tests := []struct {
		name    string
		modify  func(*ThemeFile)
		wantErr bool
	}{
		{"valid", func(*ThemeFile) {}, false},
		{"missing name", func(t *ThemeFile) { t.Name = "" }, true},
		{"wrong version", func(t *ThemeFile) { t.Version = "2" }, true},
		{"missing color", func(t *ThemeFile) { t.Colors.Text = "" }, true},
		{"bad color", func(t *ThemeFile) { t.Colors.Border = "grey" }, true},
		{"bad grid color", func(t *ThemeFile) { t.Colors.Grid.Cursor = "#12345" }, true},
		{"six digit grid color", func(t *ThemeFile) { t.Colors.Grid.Cursor = "#123456" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := base()
			tt.modify(&theme)
			err := theme.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidInput) {
				t.Errorf("error %v should be a validation error", err)
			}
		})
	}
}

func TestExportTheme_RoundTrip(t *testing.T) {
	for _, name := range BuiltinThemes() {
		t.Run(name, func(t *testing.T) {
			data, err := ExportTheme(name)
			if err != nil {
				t.Fatalf("ExportTheme error: %v", err)
			}
			theme, err := LoadThemeFile(writeTheme(t, string(data)))
			if err != nil {
				t.Fatalf("exported theme does not load: %v", err)
			}
			want, _ := GetPalette(name)
			if got := theme.ToPalette(); *got != *want {
				t.Errorf("palette changed across export:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestExportTheme_Unknown(t *testing.T) {
	if _, err := ExportTheme("solarized"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
