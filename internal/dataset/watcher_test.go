package dataset

import (
	"os"
	"testing"
	"time"

	"github.com/Iron-Ham/datagrid/internal/event"
)

func TestWatcher_StopIsIdempotent(t *testing.T) {
	path := writeFile(t, "rows.csv", "id\n1\n")
	w, err := NewWatcher(path, Options{}, nil)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}

	w.Start()
	w.Stop()
	w.Stop()
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	path := writeFile(t, "rows.csv", "id\n1\n")
	w, err := NewWatcher(path, Options{}, nil)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	w.Stop()
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	if _, err := NewWatcher("/nonexistent/dir/rows.csv", Options{}, nil); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestWatcher_Reload(t *testing.T) {
	path := writeFile(t, "rows.csv", "id,name\n1,Ada\n")
	w, err := NewWatcher(path, Options{}, nil)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	defer w.Stop()

	bus := event.NewBus()
	published := make(chan event.DatasetReloadedEvent, 4)
	bus.Subscribe(event.TypeDatasetReloaded, func(e event.Event) {
		select {
		case published <- e.(event.DatasetReloadedEvent):
		default:
		}
	})

	reloaded := make(chan *Dataset, 4)
	w.SetReloadCallback(func(ds *Dataset) {
		select {
		case reloaded <- ds:
		default:
		}
	})
	w.SetPublisher(bus)
	w.SetDebounce(10 * time.Millisecond)
	w.Start()

	if err := os.WriteFile(path, []byte("id,name\n1,Ada\n2,Bob\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case ds := <-reloaded:
		if len(ds.Rows) != 2 {
			t.Errorf("reloaded %d rows, want 2", len(ds.Rows))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	select {
	case e := <-published:
		if e.Rows != 2 || e.Columns != 2 {
			t.Errorf("event = %+v", e)
		}
	case <-time.After(time.Second):
		t.Fatal("reload event not published")
	}
}

func TestWatcher_ReloadError(t *testing.T) {
	path := writeFile(t, "rows.csv", "id\n1\n")
	w, err := NewWatcher(path, Options{}, nil)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	defer w.Stop()

	failures := make(chan error, 4)
	w.SetErrorCallback(func(err error) {
		select {
		case failures <- err:
		default:
		}
	})
	w.SetDebounce(10 * time.Millisecond)
	w.Start()

	if err := os.WriteFile(path, []byte("id\n1\n1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case err := <-failures:
		if err == nil {
			t.Error("error callback received nil")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	path := writeFile(t, "rows.csv", "id\n1\n")
	w, err := NewWatcher(path, Options{}, nil)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	defer w.Stop()

	reloaded := make(chan *Dataset, 1)
	w.SetReloadCallback(func(ds *Dataset) {
		select {
		case reloaded <- ds:
		default:
		}
	})
	w.SetDebounce(10 * time.Millisecond)
	w.Start()

	sibling := path + ".bak"
	if err := os.WriteFile(sibling, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-reloaded:
		t.Error("reloaded after a sibling file changed")
	case <-time.After(200 * time.Millisecond):
	}
}
