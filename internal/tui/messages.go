package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/datagrid/internal/dataset"
)

// messageTimeout is how long a status message stays visible.
const messageTimeout = 4 * time.Second

// datasetReloadedMsg carries a dataset reloaded by the file watcher.
type datasetReloadedMsg struct {
	ds *dataset.Dataset
}

// datasetErrorMsg reports a failed reload.
type datasetErrorMsg struct {
	err error
}

// clearMessageMsg hides the status message with the matching sequence
// number. Newer messages are left alone.
type clearMessageMsg struct {
	seq int
}

// DatasetReloaded returns the message the host sends after a reload.
func DatasetReloaded(ds *dataset.Dataset) tea.Msg {
	return datasetReloadedMsg{ds: ds}
}

// DatasetError returns the message the host sends after a failed reload.
func DatasetError(err error) tea.Msg {
	return datasetErrorMsg{err: err}
}

func clearMessageAfter(seq int) tea.Cmd {
	return tea.Tick(messageTimeout, func(time.Time) tea.Msg {
		return clearMessageMsg{seq: seq}
	})
}
