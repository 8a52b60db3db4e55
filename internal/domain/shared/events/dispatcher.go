package events

import (
	"fmt"
	"sync"
)

// InMemoryDispatcher delivers events asynchronously through a buffered
// channel. Handlers run on a single dispatch goroutine; a handler error is
// isolated to that event.
type InMemoryDispatcher struct {
	handlers map[string][]Handler
	mu       sync.RWMutex

	running bool
	stopCh  chan struct{}
	eventCh chan DomainEvent
	wg      sync.WaitGroup

	// onError is invoked when a handler fails; nil means the failure is
	// silently dropped.
	onError func(event DomainEvent, err error)
}

func NewInMemoryDispatcher(bufferSize int) *InMemoryDispatcher {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	return &InMemoryDispatcher{
		handlers: make(map[string][]Handler),
		stopCh:   make(chan struct{}),
		eventCh:  make(chan DomainEvent, bufferSize),
	}
}

// OnHandlerError registers a callback for handler failures. Must be called
// before Start.
func (d *InMemoryDispatcher) OnHandlerError(fn func(event DomainEvent, err error)) {
	d.onError = fn
}

func (d *InMemoryDispatcher) Publish(event DomainEvent) error {
	d.mu.RLock()
	running := d.running
	d.mu.RUnlock()
	if !running {
		return fmt.Errorf("event dispatcher is not running")
	}

	select {
	case d.eventCh <- event:
		return nil
	default:
		return fmt.Errorf("event channel is full")
	}
}

func (d *InMemoryDispatcher) PublishAll(events []DomainEvent) error {
	for _, event := range events {
		if err := d.Publish(event); err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.EventType(), err)
		}
	}
	return nil
}

func (d *InMemoryDispatcher) Subscribe(eventType string, handler Handler) error {
	if eventType == "" {
		return fmt.Errorf("event type cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	return nil
}

func (d *InMemoryDispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return fmt.Errorf("event dispatcher already running")
	}
	d.running = true

	d.wg.Add(1)
	go d.dispatchLoop()
	return nil
}

func (d *InMemoryDispatcher) Stop() error {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return nil
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	return nil
}

func (d *InMemoryDispatcher) dispatchLoop() {
	defer d.wg.Done()

	for {
		select {
		case <-d.stopCh:
			// Drain events already queued before shutting down.
			for {
				select {
				case event := <-d.eventCh:
					d.dispatch(event)
				default:
					return
				}
			}
		case event := <-d.eventCh:
			d.dispatch(event)
		}
	}
}

func (d *InMemoryDispatcher) dispatch(event DomainEvent) {
	d.mu.RLock()
	handlers := d.handlers[event.EventType()]
	d.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler.Handle(event); err != nil && d.onError != nil {
			d.onError(event, err)
		}
	}
}
