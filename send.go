package canfix

import "fmt"

// SendParameter publishes par on the bus. The originating node field is
// always overwritten with this node's own address before encoding,
// regardless of what the caller set it to (spec §8 round-trip property).
func (n *NodeContext) SendParameter(par Parameter) error {
	par.Node = n.node
	return n.write(par.Encode())
}

// SendIdentification emits this node's identification frame(s) to dest
// (0 for broadcast), per spec §4.3.
func (n *NodeContext) SendIdentification(dest uint8) error {
	return n.sendIdentification(dest)
}

// SendNodeStatus emits a node status report, spec §4.4. length must be
// in [1,5]; outside that range the call fails locally without
// transmitting anything.
func (n *NodeContext) SendNodeStatus(ptype uint16, data []byte) error {
	if len(data) < 1 || len(data) > 5 {
		return fmt.Errorf("node status payload length %d out of range [1,5]: %w", len(data), ErrInvalidArgument)
	}
	payload := []byte{OpStatus, byte(ptype), byte(ptype >> 8)}
	payload = append(payload, data...)
	return n.write(NewFrame(n.replyID(), payload))
}
