package logging

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Entry is one parsed log line.
type Entry struct {
	Time      time.Time      `json:"time"`
	Level     string         `json:"level"`
	Message   string         `json:"msg"`
	Component string         `json:"component,omitempty"`
	Source    string         `json:"source,omitempty"`
	Attrs     map[string]any `json:"attrs,omitempty"`
}

// Filter selects entries. Zero-valued fields do not filter.
type Filter struct {
	// Level keeps entries at or above this level.
	Level     string
	Since     time.Time
	Until     time.Time
	Component string
	Contains  string
}

var levelOrder = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ReadEntries parses the log file in dir together with any rotated backups,
// compressed or not, and returns the entries in time order. Lines that are
// not JSON objects are skipped.
func ReadEntries(dir string) ([]Entry, error) {
	active := filepath.Join(dir, LogFileName)
	if _, err := os.Stat(active); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no log file found in %s: %w", dir, err)
		}
		return nil, fmt.Errorf("failed to stat log file: %w", err)
	}

	backups, err := filepath.Glob(active + ".*")
	if err != nil {
		return nil, fmt.Errorf("failed to list log backups: %w", err)
	}

	var entries []Entry
	for _, path := range append(backups, active) {
		fileEntries, err := readFile(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fileEntries...)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.Before(entries[j].Time)
	})
	return entries, nil
}

func readFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open compressed log %s: %w", path, err)
		}
		defer func() { _ = zr.Close() }()
		r = zr
	}
	return parseEntries(r)
}

func parseEntries(r io.Reader) ([]Entry, error) {
	const maxLine = 1024 * 1024

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLine)

	var entries []Entry
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entry, err := parseEntry(line)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading log file: %w", err)
	}
	return entries, nil
}

func parseEntry(line string) (Entry, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, fmt.Errorf("invalid JSON: %w", err)
	}

	entry := Entry{Attrs: make(map[string]any)}
	for k, v := range raw {
		s, _ := v.(string)
		switch k {
		case "time":
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				entry.Time = t
			}
		case "level":
			entry.Level = s
		case "msg":
			entry.Message = s
		case "component":
			entry.Component = s
		case "source":
			entry.Source = s
		default:
			entry.Attrs[k] = v
		}
	}
	return entry, nil
}

// FilterEntries returns the entries matching every criterion in f.
func FilterEntries(entries []Entry, f Filter) []Entry {
	if f == (Filter{}) {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if f.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f Filter) matches(e Entry) bool {
	if f.Level != "" {
		min, ok := levelOrder[strings.ToUpper(f.Level)]
		got, known := levelOrder[e.Level]
		if ok && known && got < min {
			return false
		}
	}
	if !f.Since.IsZero() && e.Time.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && e.Time.After(f.Until) {
		return false
	}
	if f.Component != "" && e.Component != f.Component {
		return false
	}
	if f.Contains != "" && !strings.Contains(e.Message, f.Contains) {
		return false
	}
	return true
}

// ExportFormats lists the formats accepted by ExportEntries.
func ExportFormats() []string {
	return []string{"json", "text", "csv"}
}

// ExportEntries writes entries to w as "json", "text", or "csv".
func ExportEntries(w io.Writer, entries []Entry, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if entries == nil {
			entries = []Entry{}
		}
		return enc.Encode(entries)
	case "text":
		return exportText(w, entries)
	case "csv":
		return exportCSV(w, entries)
	default:
		return fmt.Errorf("unsupported export format: %s (supported: %s)",
			format, strings.Join(ExportFormats(), ", "))
	}
}

// FormatText renders one entry as a single human-readable line.
func FormatText(e Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %-5s", e.Time.Format("2006-01-02 15:04:05.000"), e.Level)
	if e.Component != "" {
		fmt.Fprintf(&b, " %s:", e.Component)
	}
	b.WriteString(" ")
	b.WriteString(e.Message)
	if e.Source != "" {
		fmt.Fprintf(&b, " (source=%s)", e.Source)
	}
	if len(e.Attrs) > 0 {
		attrs, _ := json.Marshal(e.Attrs)
		b.WriteString(" ")
		b.Write(attrs)
	}
	return b.String()
}

func exportText(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, FormatText(e)); err != nil {
			return fmt.Errorf("failed to write text entry: %w", err)
		}
	}
	return nil
}

func exportCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "level", "component", "source", "message", "attrs"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, e := range entries {
		attrs := ""
		if len(e.Attrs) > 0 {
			if b, err := json.Marshal(e.Attrs); err == nil {
				attrs = string(b)
			}
		}
		record := []string{
			e.Time.Format(time.RFC3339Nano),
			e.Level,
			e.Component,
			e.Source,
			e.Message,
			attrs,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
