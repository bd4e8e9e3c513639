package canfix

import (
	"encoding/binary"
	"fmt"
)

// MaxAlarmPayload is the largest number of payload bytes an Alarm frame
// can carry (wire length 8 minus the 2-byte little-endian code).
const MaxAlarmPayload = 6

// Alarm is a Node Alarm received from a node in the identifier range
// 1..255, spec §4.1.
type Alarm struct {
	Node    uint16
	Code    uint16
	Payload [MaxAlarmPayload]byte
	Length  uint8
}

// DecodeAlarm parses an inbound Frame whose identifier has already been
// classified as ClassAlarm. The alarm code is little-endian; frames
// shorter than 2 bytes are malformed and are rejected.
func DecodeAlarm(frame Frame) (Alarm, error) {
	if frame.Length < 2 {
		return Alarm{}, fmt.Errorf("alarm frame too short (%d bytes): %w", frame.Length, ErrMalformed)
	}
	alarm := Alarm{
		Node:   frame.ID,
		Code:   binary.LittleEndian.Uint16(frame.Data[0:2]),
		Length: frame.Length - 2,
	}
	if alarm.Length > MaxAlarmPayload {
		alarm.Length = MaxAlarmPayload
	}
	copy(alarm.Payload[:alarm.Length], frame.Data[2:2+alarm.Length])
	return alarm, nil
}
