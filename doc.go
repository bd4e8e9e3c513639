// Package canfix implements the node side of the CAN-FiX protocol: a
// CAN-bus based Flight Information eXchange format used by experimental
// and MakerPlane avionics to publish parameters, respond to node
// management requests, emit alarms and step through configuration and
// firmware-download handshakes.
//
// The core is transport agnostic: it never touches a CAN socket directly,
// instead calling the WriteFrame callback registered on a NodeContext and
// accepting inbound frames through Exec. See the transport/ subpackages
// for SocketCAN and in-memory bus implementations, and cmd/canfixnode for
// a runnable example node.
package canfix
