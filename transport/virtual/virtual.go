// Package virtual provides an in-memory loopback canfix.Bus, useful for
// tests and for the cmd/canfixnode example's "-interface virtual" mode.
// It is grounded on the teacher's pkg/can/virtual TCP-broker bus, but
// simplified to a pure in-process registry: nothing in this module needs
// to talk across OS processes, so there is no socket, only a shared map
// of named buses that loop frames between every subscriber on the same
// channel name.
package virtual

import (
	"sync"

	canfix "github.com/canfix/nodecore"
)

var (
	registryMu sync.Mutex
	registry   = map[string]*hub{}
)

// hub is the shared loopback domain for one channel name: every Bus
// connected to the same name receives every frame any of them sends.
type hub struct {
	mu        sync.Mutex
	listeners []canfix.FrameListener
}

func getHub(channel string) *hub {
	registryMu.Lock()
	defer registryMu.Unlock()
	h, ok := registry[channel]
	if !ok {
		h = &hub{}
		registry[channel] = h
	}
	return h
}

// Bus is a canfix.Bus backed by an in-process hub.
type Bus struct {
	hub        *hub
	listener   canfix.FrameListener
	receiveOwn bool
}

// New creates a virtual bus on the given channel name. Buses created
// with the same name loop frames to one another in-process.
func New(channel string) (*Bus, error) {
	return &Bus{hub: getHub(channel)}, nil
}

// SetReceiveOwn controls whether this bus's own sends are echoed back to
// its own listener, matching the teacher's test-only receive-own mode.
func (b *Bus) SetReceiveOwn(receiveOwn bool) {
	b.receiveOwn = receiveOwn
}

func (b *Bus) Connect(...any) error { return nil }

func (b *Bus) Disconnect() error {
	b.hub.mu.Lock()
	defer b.hub.mu.Unlock()
	for i, l := range b.hub.listeners {
		if l == b.listener {
			b.hub.listeners = append(b.hub.listeners[:i], b.hub.listeners[i+1:]...)
			break
		}
	}
	return nil
}

func (b *Bus) Send(frame canfix.Frame) error {
	b.hub.mu.Lock()
	listeners := append([]canfix.FrameListener(nil), b.hub.listeners...)
	b.hub.mu.Unlock()

	for _, l := range listeners {
		if l == b.listener && !b.receiveOwn {
			continue
		}
		l.Handle(frame)
	}
	return nil
}

func (b *Bus) Subscribe(listener canfix.FrameListener) error {
	b.hub.mu.Lock()
	defer b.hub.mu.Unlock()
	b.listener = listener
	b.hub.listeners = append(b.hub.listeners, listener)
	return nil
}
