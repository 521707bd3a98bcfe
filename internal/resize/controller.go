package resize

import (
	"github.com/Iron-Ham/datagrid/internal/event"
	"github.com/Iron-Ham/datagrid/internal/grid"
	"github.com/Iron-Ham/datagrid/internal/logging"
)

// InputSource delivers global pointer events. *event.Bus satisfies it.
type InputSource interface {
	Subscribe(eventType string, handler event.Handler) string
	Unsubscribe(id string) bool
}

// Publisher receives resize notifications. *event.Bus satisfies it.
type Publisher interface {
	Publish(event.Event)
}

// Option configures a Controller.
type Option func(*Controller)

// WithSurface sets the surface leased during drags. Defaults to a private
// Screen.
func WithSurface(s Surface) Option {
	return func(c *Controller) {
		if s != nil {
			c.surface = s
		}
	}
}

// WithPublisher announces width changes and drag lifecycle events on p.
func WithPublisher(p Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *logging.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// Controller holds the authoritative column widths. It is not safe for
// concurrent use; pointer events must be published on the goroutine that
// drives the controller.
type Controller struct {
	columns   []grid.Column
	input     InputSource
	surface   Surface
	publisher Publisher
	logger    *logging.Logger
	active    *Drag
}

// NewController returns a controller over a copy of columns. Widths below
// grid.MinWidth are raised to it. A nil input gets a private bus, which
// leaves drags driven only through Cancel and Close.
func NewController(columns []grid.Column, input InputSource, opts ...Option) *Controller {
	c := &Controller{
		input:   input,
		surface: NewScreen(),
		logger:  logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.input == nil {
		c.input = event.NewBus()
	}
	c.logger = c.logger.WithComponent("resize")
	c.columns = normalize(columns)
	return c
}

func normalize(columns []grid.Column) []grid.Column {
	out := grid.CloneColumns(columns)
	for i := range out {
		if out[i].Width < grid.MinWidth {
			out[i].Width = grid.MinWidth
		}
	}
	return out
}

// Columns returns a copy of the current columns.
func (c *Controller) Columns() []grid.Column {
	return grid.CloneColumns(c.columns)
}

// Surface returns the surface drags lease.
func (c *Controller) Surface() Surface {
	return c.surface
}

// SetColumns replaces the column list, for example after the host reloads
// its data. Any active drag is cancelled first.
func (c *Controller) SetColumns(columns []grid.Column) {
	if c.active != nil {
		c.active.end(event.EndCancelled)
	}
	c.columns = normalize(columns)
	c.logger.Debug("columns replaced", "count", len(c.columns))
}

// ResizeColumn sets the width of the column at index. Calls with an index
// out of range or a width of grid.MinWidth or less are ignored.
func (c *Controller) ResizeColumn(index, width int) {
	if width <= grid.MinWidth {
		return
	}
	c.setWidth(index, width, event.SourceAPI, true)
}

// setWidth is the mutation path shared by ResizeColumn and drags. It enforces
// the inclusive floor: width == grid.MinWidth is applied.
func (c *Controller) setWidth(index, width int, source string, finished bool) bool {
	if index < 0 || index >= len(c.columns) || width < grid.MinWidth {
		return false
	}
	c.columns[index] = c.columns[index].WithWidth(width)
	c.logger.Debug("column resized",
		"index", index,
		"field", c.columns[index].Field,
		"width", width,
		"source", source,
	)
	c.publish(event.NewColumnResizedEvent(index, c.columns, finished, source))
	return true
}

// StartResize begins a drag on the column at index, anchored at the pointer's
// horizontal position startX. It returns nil and installs nothing when index
// is out of range. A drag already in progress is cancelled first.
func (c *Controller) StartResize(index, startX int) *Drag {
	if index < 0 || index >= len(c.columns) {
		return nil
	}
	if c.active != nil {
		c.logger.Debug("cancelling in-flight drag", "index", c.active.index)
		c.active.end(event.EndCancelled)
	}

	col := c.columns[index]
	d := &Drag{
		c:          c,
		index:      index,
		field:      col.Field,
		startX:     startX,
		startWidth: col.Width,
	}
	d.moveSub = c.input.Subscribe(event.TypePointerMove, d.onMove)
	d.upSub = c.input.Subscribe(event.TypePointerUp, d.onUp)
	d.lease = Acquire(c.surface)
	c.active = d

	c.logger.Debug("drag started", "index", index, "field", col.Field, "start_x", startX, "start_width", col.Width)
	c.publish(event.NewResizeStartedEvent(index, col.Field, startX, col.Width))
	return d
}

// Active returns the drag in progress, or nil.
func (c *Controller) Active() *Drag {
	return c.active
}

// Close ends any active drag and releases the surface.
func (c *Controller) Close() {
	if c.active != nil {
		c.active.end(event.EndClosed)
	}
}

func (c *Controller) publish(e event.Event) {
	if c.publisher != nil {
		c.publisher.Publish(e)
	}
}
