// Package internal contains integration tests that verify the grid packages
// work together: datasets feed the controllers, the controllers publish on a
// shared event bus, and reloads prune stale selections.
package internal

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Iron-Ham/datagrid/internal/dataset"
	"github.com/Iron-Ham/datagrid/internal/event"
	"github.com/Iron-Ham/datagrid/internal/grid"
	"github.com/Iron-Ham/datagrid/internal/resize"
	"github.com/Iron-Ham/datagrid/internal/selection"
)

func writeCSV(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// TestGridIntegration simulates a host: one bus for notifications, one for
// pointer input, and all three controllers over a loaded dataset.
func TestGridIntegration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	writeCSV(t, path, "id,name,age\n1,Ada,36\n2,Grace,45\n3,Linus,28\n")

	ds, err := dataset.Load(path, dataset.Options{DefaultWidth: 100})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	bus := event.NewBus()
	input := event.NewBus()

	var types []string
	bus.SubscribeAll(func(e event.Event) {
		types = append(types, e.EventType())
	})

	rows := selection.NewRowSelection(grid.MultipleSelection, selection.WithPublisher(bus))
	cells := selection.NewCellSelection(selection.WithPublisher(bus))
	screen := resize.NewScreen()
	resizer := resize.NewController(ds.Columns, input,
		resize.WithPublisher(bus), resize.WithSurface(screen))
	defer resizer.Close()

	rows.SelectAll(ds.Rows)
	cells.SelectCell(grid.IntID(2), "age")

	resizer.StartResize(2, 500)
	input.Publish(event.NewPointerMoveEvent(530, 0))
	if screen.Cursor() != resize.CursorColResize {
		t.Errorf("cursor during drag = %q", screen.Cursor())
	}
	input.Publish(event.NewPointerUpEvent(530, 0))

	if got := resizer.Columns()[2].Width; got != 130 {
		t.Errorf("age width = %d, want 130", got)
	}
	if screen.Cursor() != resize.CursorDefault || !screen.TextSelection() {
		t.Error("surface not restored after release")
	}

	// Row 2 disappears from the file; the host prunes against the new data.
	writeCSV(t, path, "id,name,age\n1,Ada,36\n3,Linus,28\n")
	reloaded, err := dataset.Load(path, dataset.Options{DefaultWidth: 100})
	if err != nil {
		t.Fatalf("reload error: %v", err)
	}
	pruned := rows.Prune(reloaded.Rows)
	cells.Prune(reloaded.Rows, resizer.Columns())

	if pruned.Contains(grid.IntID(2)) {
		t.Error("pruned selection still contains row 2")
	}
	if !rows.IsAllSelected(reloaded.Rows) {
		t.Error("remaining rows should all still be selected")
	}
	if cells.Len() != 0 {
		t.Errorf("cell on a removed row survived: %v", cells.Selected())
	}

	want := []string{
		event.TypeSelectionChanged,
		event.TypeCellSelectionChanged,
		event.TypeResizeStarted,
		event.TypeColumnResized,
		event.TypeColumnResized,
		event.TypeResizeEnded,
		event.TypeSelectionChanged,
		event.TypeCellSelectionChanged,
	}
	if len(types) != len(want) {
		t.Fatalf("got events %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, types[i], want[i])
		}
	}
}

// TestWatcherIntegration checks that a watched file change reaches bus
// subscribers and hands the host a dataset it can prune against.
func TestWatcherIntegration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.csv")
	writeCSV(t, path, "id,name\n1,Ada\n2,Grace\n")

	bus := event.NewBus()
	reloadedEvents := make(chan event.DatasetReloadedEvent, 4)
	bus.Subscribe(event.TypeDatasetReloaded, func(e event.Event) {
		select {
		case reloadedEvents <- e.(event.DatasetReloadedEvent):
		default:
		}
	})

	w, err := dataset.NewWatcher(path, dataset.Options{}, nil)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	w.SetPublisher(bus)
	w.SetDebounce(10 * time.Millisecond)

	datasets := make(chan *dataset.Dataset, 4)
	w.SetReloadCallback(func(ds *dataset.Dataset) {
		select {
		case datasets <- ds:
		default:
		}
	})
	w.Start()
	defer w.Stop()

	writeCSV(t, path, "id,name\n1,Ada\n")

	select {
	case e := <-reloadedEvents:
		if e.Rows != 1 || e.Columns != 2 {
			t.Errorf("reload event = %+v, want 1 row and 2 columns", e)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload event")
	}

	ds := <-datasets
	rows := selection.NewRowSelection(grid.MultipleSelection)
	rows.Toggle(grid.IntID(1))
	rows.Toggle(grid.IntID(2))
	rows.Prune(ds.Rows)
	if got := rows.Selected(); len(got) != 1 || got[0] != grid.IntID(1) {
		t.Errorf("selection after prune = %v, want [1]", got)
	}
}

// TestEventBusConcurrentPublish verifies the bus tolerates publishers on
// several goroutines, as happens when the file watcher reports while the
// host publishes selection changes.
func TestEventBusConcurrentPublish(t *testing.T) {
	bus := event.NewBus()

	var receivedCount int
	var mu sync.Mutex

	bus.SubscribeAll(func(e event.Event) {
		mu.Lock()
		receivedCount++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	publishCount := 100

	for i := 0; i < publishCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if id%2 == 0 {
				bus.Publish(event.NewDatasetReloadedEvent("people.csv", id, 2))
				return
			}
			bus.Publish(event.NewSelectionChangedEvent(event.OpToggle, []grid.RowID{grid.IntID(int64(id))}, nil))
		}(i)
	}

	wg.Wait()

	mu.Lock()
	count := receivedCount
	mu.Unlock()

	if count != publishCount {
		t.Errorf("Expected %d events, got %d", publishCount, count)
	}
}
