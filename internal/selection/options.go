package selection

import (
	"github.com/Iron-Ham/datagrid/internal/event"
	"github.com/Iron-Ham/datagrid/internal/logging"
)

// Publisher receives a copy of every change a controller makes.
// *event.Bus satisfies it.
type Publisher interface {
	Publish(event.Event)
}

type options struct {
	publisher Publisher
	logger    *logging.Logger
}

// Option configures a selection controller.
type Option func(*options)

// WithPublisher announces every mutating call on p.
func WithPublisher(p Publisher) Option {
	return func(o *options) { o.publisher = p }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(component string, opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.NopLogger()
	}
	o.logger = o.logger.WithComponent(component)
	return o
}

func (o options) publish(e event.Event) {
	if o.publisher != nil {
		o.publisher.Publish(e)
	}
}
