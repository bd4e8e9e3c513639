// Package socketcan adapts github.com/brutella/can's SocketCAN binding to
// the canfix.Bus contract, grounded on the teacher's pkg/can/socketcan
// wrapper.
package socketcan

import (
	sockcan "github.com/brutella/can"
	"golang.org/x/sys/unix"

	canfix "github.com/canfix/nodecore"
)

// Bus wraps a brutella/can SocketCAN binding.
type Bus struct {
	bus      *sockcan.Bus
	listener canfix.FrameListener
}

// New opens (but does not yet connect) a SocketCAN interface, e.g. "can0".
func New(name string) (*Bus, error) {
	bus, err := sockcan.NewBusForInterfaceWithName(name)
	if err != nil {
		return nil, err
	}
	return &Bus{bus: bus}, nil
}

func (b *Bus) Connect(...any) error {
	go b.bus.ConnectAndPublish()
	return nil
}

func (b *Bus) Disconnect() error {
	return b.bus.Disconnect()
}

func (b *Bus) Send(frame canfix.Frame) error {
	return b.bus.Publish(sockcan.Frame{
		ID:     uint32(frame.ID),
		Length: frame.Length,
		Data:   frame.Data,
	})
}

func (b *Bus) Subscribe(listener canfix.FrameListener) error {
	b.listener = listener
	b.bus.Subscribe(b)
	return nil
}

// Handle implements brutella/can's frame-handler interface, translating
// its Frame into ours. The identifier is masked down to the 11-bit
// standard range; CAN-FiX has no use for extended or RTR frames, and a
// real SocketCAN socket will otherwise report them with the EFF/RTR bits
// set in the high byte of the identifier.
func (b *Bus) Handle(frame sockcan.Frame) {
	if b.listener == nil {
		return
	}
	id := uint16(frame.ID & unix.CAN_SFF_MASK)
	b.listener.Handle(canfix.Frame{ID: id, Length: frame.Length, Data: frame.Data})
}
