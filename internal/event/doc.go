// Package event provides a pub-sub event bus and the events exchanged by the
// grid interaction controllers.
//
// Controllers never call host code directly. Every state change is published
// as an event and hosts subscribe to the types they care about. The same bus
// also carries global pointer input: a column resize drag subscribes to
// [TypePointerMove] and [TypePointerUp] for its lifetime and unsubscribes
// when it ends.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub event dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Event Categories
//
// Selection:
//   - [SelectionChangedEvent]: row selection snapshot after each operation
//   - [CellSelectionChangedEvent]: cell selection snapshot after each operation
//
// Resize:
//   - [ResizeStartedEvent]: a drag began on a column border
//   - [ColumnResizedEvent]: a column width changed, by API call or drag step
//   - [ResizeEndedEvent]: a drag stopped listening (released, cancelled, closed)
//
// Input:
//   - [PointerMoveEvent], [PointerUpEvent]: global pointer input in logical pixels
//
// Dataset:
//   - [DatasetReloadedEvent], [DatasetErrorEvent]: watched file reload outcomes
//
// # Thread Safety
//
// The [Bus] type is safe for concurrent use. Handlers are called
// synchronously on the publishing goroutine and protected against panics.
//
// # Basic Usage
//
//	bus := event.NewBus(event.WithLogger(logger))
//
//	bus.Subscribe(event.TypeSelectionChanged, func(e event.Event) {
//	    changed := e.(event.SelectionChangedEvent)
//	    fmt.Println(len(changed.SelectedRows), "rows selected")
//	})
//
//	id := bus.SubscribeAll(func(e event.Event) {
//	    logger.Debug("event", "type", e.EventType())
//	})
//	defer bus.Unsubscribe(id)
package event
