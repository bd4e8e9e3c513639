package canfix

import "encoding/binary"

// handleNSM processes a Node Specific Message. requester is the node
// that sent the request — the dispatcher derives it from the inbound
// identifier's offset from idNSMMin (spec §4.2), since the CAN bus is a
// broadcast medium and every node's Exec sees every NSM frame; the
// payload's target byte (data[1]), not the identifier, is what decides
// whether this particular node answers.
func (n *NodeContext) handleNSM(requester uint16, frame Frame) {
	if frame.Length < 2 {
		n.logger.Debug("dropping malformed NSM frame")
		return
	}
	opcode := frame.Data[nsmOpcodeOffset]
	target := frame.Data[nsmRequesterOffset]
	broadcast := target == broadcastNode
	if target != n.node && !broadcast {
		// Mis-addressed: not for this node and not broadcast (spec §4.2, §8).
		return
	}

	req := uint8(requester)

	switch opcode {

	case OpIdentify:
		n.sendIdentification(req)

	case OpBitrate:
		if frame.Length < 3 {
			return
		}
		preset := frame.Data[nsmPayloadOffset]
		if preset < 1 || preset > 4 {
			n.replyNSM(opcode, req, genericNSMError)
			return
		}
		if n.onBitrate == nil {
			n.replyNSM(opcode, req, genericNSMError)
			return
		}
		n.onBitrate(preset)
		n.replyNSM(opcode, req, 0)

	case OpNodeSet:
		if broadcast {
			// Never answered on broadcast: reassigning every node to the
			// same address would be nonsensical.
			return
		}
		if frame.Length < 3 {
			return
		}
		newNode := frame.Data[nsmPayloadOffset]
		if newNode == 0 {
			n.replyNSM(opcode, req, genericNSMError)
			return
		}
		n.node = newNode
		if n.onNodeSet != nil {
			n.onNodeSet(newNode)
		}
		n.replyNSM(opcode, req, 0)

	case OpDisableParm:
		if frame.Length < 5 {
			return
		}
		paramType := binary.LittleEndian.Uint16(frame.Data[nsmPayloadOffset : nsmPayloadOffset+2])
		n.paramEnable.SetEnabled(paramType, false)

	case OpEnableParm:
		if broadcast {
			return
		}
		if frame.Length < 5 {
			return
		}
		paramType := binary.LittleEndian.Uint16(frame.Data[nsmPayloadOffset : nsmPayloadOffset+2])
		n.paramEnable.SetEnabled(paramType, true)

	case OpReport:
		if n.onReport != nil {
			n.onReport()
		}

	case OpStatus:
		// Outbound only; peers never request it from us (spec §4.2).

	case OpFirmware:
		if frame.Length < 5 {
			return
		}
		vcode := binary.LittleEndian.Uint16(frame.Data[2:4])
		channel := frame.Data[4]
		if n.onFirmware == nil {
			n.replyNSM(opcode, req, genericNSMError)
			return
		}
		status := n.onFirmware(vcode, channel)
		n.replyNSM(opcode, req, status)

	case OpTwoWay:
		if broadcast {
			return
		}
		if frame.Length < 5 {
			return
		}
		channel := frame.Data[2]
		kind := binary.LittleEndian.Uint16(frame.Data[3:5])
		if n.onTwoWay == nil {
			n.replyNSM(opcode, req, genericNSMError)
			return
		}
		status := n.onTwoWay(channel, kind)
		if status == 0 {
			n.replyNSM(opcode, req, 0)
		}

	case OpConfigSet:
		if frame.Length < 4 {
			return
		}
		key := binary.LittleEndian.Uint16(frame.Data[2:4])
		value := frame.Data[4:frame.Length]
		if n.onConfigSet == nil {
			n.replyNSM(opcode, req, genericNSMError)
			return
		}
		status := n.onConfigSet(key, value)
		n.replyNSM(opcode, req, status)

	case OpConfigGet:
		if frame.Length < 4 {
			return
		}
		key := binary.LittleEndian.Uint16(frame.Data[2:4])
		if n.onConfigGet == nil {
			n.replyNSM(opcode, req, genericNSMError)
			return
		}
		value, status := n.onConfigGet(key)
		if status != 0 {
			n.replyNSM(opcode, req, status)
			return
		}
		n.replyNSMValue(opcode, req, value)

	case OpDescription:
		// Outbound only; follow-up frames after Identify (spec §4.3).

	default:
		if opcode >= OpParameterSetMin && opcode <= OpParameterSetMax {
			// Reserved Parameter Set slots: unknown, silently ignored.
			return
		}
		n.logger.WithField("opcode", opcode).Debug("unknown NSM opcode, ignored")
	}
}

// replyNSM sends the common 3-byte {opcode, requester, status} reply.
func (n *NodeContext) replyNSM(opcode, requester, status uint8) error {
	data := []byte{opcode, requester, status}
	return n.write(NewFrame(n.replyID(), data))
}

// replyNSMValue sends a successful Config Get reply: {opcode, requester,
// 0, value...}.
func (n *NodeContext) replyNSMValue(opcode, requester uint8, value []byte) error {
	data := make([]byte, 0, 3+len(value))
	data = append(data, opcode, requester, 0)
	data = append(data, value...)
	return n.write(NewFrame(n.replyID(), data))
}
