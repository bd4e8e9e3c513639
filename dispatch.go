package canfix

// Exec is the main dispatcher entry point (spec §6 host API). It
// classifies an inbound frame by identifier and routes it to the alarm
// handler, the parameter handler, or the NSM state machine, exactly per
// spec §4.1. Malformed frames and frames this node has no reply for are
// silently dropped; Exec never returns an error to the caller because
// inbound processing never fails loudly (spec §7 propagation policy) —
// any outbound reply error is instead surfaced through the WriteFrame
// callback itself.
func (n *NodeContext) Exec(frame Frame) {
	class, addr := Classify(frame.ID)
	switch class {
	case ClassIgnore:
		return

	case ClassAlarm:
		alarm, err := DecodeAlarm(frame)
		if err != nil {
			n.logger.WithError(err).Debug("dropping malformed alarm frame")
			return
		}
		if n.onAlarm != nil {
			n.onAlarm(addr, alarm.Code, alarm.Payload[:alarm.Length])
		}

	case ClassParameter:
		par, err := DecodeParameter(frame)
		if err != nil {
			n.logger.WithError(err).Debug("dropping malformed parameter frame")
			return
		}
		if n.onParameter != nil {
			n.onParameter(par)
		}

	case ClassNSM:
		n.handleNSM(addr, frame)

	case ClassChannel:
		// Communication channel frames are logged and dropped; the core
		// does not interpret or forward channel payloads.
		n.logger.WithField("channel", addr).Debug("channel frame, not handled by core")
	}
}

// Handle implements FrameListener so a NodeContext can be subscribed
// directly to a Bus.
func (n *NodeContext) Handle(frame Frame) {
	n.Exec(frame)
}
