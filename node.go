package canfix

import log "github.com/sirupsen/logrus"

// AlarmHandler is invoked when an alarm frame is received.
type AlarmHandler func(node uint16, code uint16, payload []byte)

// ParameterHandler is invoked when a parameter frame is received.
type ParameterHandler func(par Parameter)

// NodeSetHandler is invoked after this node's address has just changed.
type NodeSetHandler func(newNode uint8)

// BitrateHandler is invoked on a valid bitrate change request.
type BitrateHandler func(preset uint8)

// ReportHandler is invoked when a Report request targets this node.
type ReportHandler func()

// TwoWayHandler decides whether to accept a two-way channel request.
// Zero means accept.
type TwoWayHandler func(channel uint8, kind uint16) uint8

// ConfigSetHandler applies a configuration write. It returns 0 on
// success or one of the reserved Config*Err codes.
type ConfigSetHandler func(key uint16, value []byte) uint8

// ConfigGetHandler reads a configuration value. It returns the value
// bytes and 0 on success, or a nil slice and one of the reserved
// Config*Err codes. The reply frame holds at most 5 value bytes
// (MaxDataLength minus the 3-byte header); longer values are truncated.
type ConfigGetHandler func(key uint16) (value []byte, status uint8)

// FirmwareHandler decides whether to accept a firmware-download request.
// Zero means accept; the host is then expected to switch into
// firmware-download mode (spec §4.6).
type FirmwareHandler func(verificationCode uint16, channel uint8) uint8

// ParamEnableStore persists which parameter types are enabled for
// publication, backing NSM opcodes 3 (Disable) and 4 (Enable). The core
// never owns this storage; a default in-memory implementation is
// provided by NewMemParamEnableStore for tests and examples.
type ParamEnableStore interface {
	SetEnabled(paramType uint16, enabled bool)
}

// NodeContext is the process-wide node identity and the set of
// registered event handlers. It is created once at boot and lives for
// the process; see spec §3 and §5 for its lifecycle and concurrency
// contract.
type NodeContext struct {
	node        uint8
	device      uint8
	revision    uint8
	model       uint32
	description []byte

	WriteFrame func(frame Frame) error

	onAlarm     AlarmHandler
	onParameter ParameterHandler
	onNodeSet   NodeSetHandler
	onBitrate   BitrateHandler
	onReport    ReportHandler
	onTwoWay    TwoWayHandler
	onConfigSet ConfigSetHandler
	onConfigGet ConfigGetHandler
	onFirmware  FirmwareHandler

	paramEnable ParamEnableStore

	logger *log.Entry
}

// NewNodeContext creates a node identity. node must be nonzero for the
// context to ever answer an NSM request addressed to itself (broadcast
// target 0 is still accepted per spec §4.2).
func NewNodeContext(node, device, revision uint8, model uint32) *NodeContext {
	return &NodeContext{
		node:        node,
		device:      device,
		revision:    revision,
		model:       model & 0xFFFFFF,
		paramEnable: NewMemParamEnableStore(),
		logger:      log.WithField("component", "canfix"),
	}
}

// Node returns the current node address.
func (n *NodeContext) Node() uint8 { return n.node }

// SetDescription sets the text streamed by a Description follow-up after
// Identify (spec §4.3). The bytes are copied; the core owns them.
func (n *NodeContext) SetDescription(text string) {
	n.description = append([]byte(nil), text...)
}

// SetParamEnableStore replaces the default in-memory enable-bitmap
// backing store, e.g. with one persisted to flash.
func (n *NodeContext) SetParamEnableStore(store ParamEnableStore) {
	n.paramEnable = store
}

func (n *NodeContext) SetAlarmCallback(fn AlarmHandler)         { n.onAlarm = fn }
func (n *NodeContext) SetParameterCallback(fn ParameterHandler) { n.onParameter = fn }
func (n *NodeContext) SetNodeSetCallback(fn NodeSetHandler)     { n.onNodeSet = fn }
func (n *NodeContext) SetBitrateCallback(fn BitrateHandler)     { n.onBitrate = fn }
func (n *NodeContext) SetReportCallback(fn ReportHandler)       { n.onReport = fn }
func (n *NodeContext) SetTwoWayCallback(fn TwoWayHandler)       { n.onTwoWay = fn }
func (n *NodeContext) SetConfigSetCallback(fn ConfigSetHandler) { n.onConfigSet = fn }
func (n *NodeContext) SetConfigGetCallback(fn ConfigGetHandler) { n.onConfigGet = fn }
func (n *NodeContext) SetFirmwareCallback(fn FirmwareHandler)   { n.onFirmware = fn }

// write sends a frame via the registered WriteFrame callback, logging
// and surfacing ErrTransport when none is registered or the transport
// rejects the frame.
func (n *NodeContext) write(frame Frame) error {
	if n.WriteFrame == nil {
		n.logger.Warn("no write_frame callback registered, dropping outbound frame")
		return ErrTransport
	}
	if err := n.WriteFrame(frame); err != nil {
		n.logger.WithError(err).Warn("transport rejected outbound frame")
		return ErrTransport
	}
	return nil
}

// replyID is the identifier this node uses for every NSM reply.
func (n *NodeContext) replyID() uint16 {
	return idNSMMin + uint16(n.node)
}
