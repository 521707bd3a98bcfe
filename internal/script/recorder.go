package script

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/Iron-Ham/datagrid/internal/event"
)

// Line is one recorded event as written by a Recorder.
type Line struct {
	Type  string      `json:"type"`
	Time  *time.Time  `json:"time,omitempty"`
	Event event.Event `json:"event"`
}

// Recorder writes events as JSON lines. Writing stops at the first error,
// which Err reports.
type Recorder struct {
	mu       sync.Mutex
	enc      *json.Encoder
	omitTime bool
	count    int
	err      error
}

// NewRecorder returns a recorder writing to w. With omitTime set the output
// is byte-for-byte reproducible across runs.
func NewRecorder(w io.Writer, omitTime bool) *Recorder {
	return &Recorder{enc: json.NewEncoder(w), omitTime: omitTime}
}

// Handle records e. It satisfies event.Handler.
func (r *Recorder) Handle(e event.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return
	}

	line := Line{Type: e.EventType(), Event: e}
	if !r.omitTime {
		ts := e.Timestamp()
		line.Time = &ts
	}
	if err := r.enc.Encode(line); err != nil {
		r.err = err
		return
	}
	r.count++
}

// Count returns the number of lines written.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Err returns the first write error.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
