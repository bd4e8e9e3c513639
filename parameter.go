package canfix

import "fmt"

// Parameter flag bits, spec §3.
const (
	FlagAnnunciate uint8 = 0x01
	FlagQuality    uint8 = 0x02
	FlagFail       uint8 = 0x04
)

// MaxParameterData is the largest number of value bytes a Parameter can
// carry (wire length 8 minus the 3-byte node/index/meta-flags header).
const MaxParameterData = 5

// Parameter is the unit of sensor/state publication on the bus, spec §3.
type Parameter struct {
	Type   uint16
	Node   uint8
	Index  uint8
	Meta   uint8
	Flags  uint8
	Data   [MaxParameterData]byte
	Length uint8
}

// IsParameterID reports whether id falls in the parameter identifier
// range, spec §3.
func IsParameterID(id uint16) bool {
	return id >= idParameterMin && id <= idParameterMax
}

// Encode builds the outbound Frame for this parameter. The identifier is
// par.Type; callers that need to republish under the node's own type
// should set Type before calling Encode.
func (p Parameter) Encode() Frame {
	var data [MaxDataLength]byte
	data[0] = p.Node
	data[1] = p.Index
	data[2] = (p.Meta << 4) | (p.Flags & 0x0F)
	n := p.Length
	if n > MaxParameterData {
		n = MaxParameterData
	}
	copy(data[3:3+n], p.Data[:n])
	return Frame{ID: p.Type, Length: 3 + n, Data: data}
}

// DecodeParameter parses an inbound Frame whose identifier has already
// been classified as ClassParameter. Frames shorter than 3 bytes are
// malformed and are rejected (spec §4.1).
func DecodeParameter(frame Frame) (Parameter, error) {
	if frame.Length < 3 {
		return Parameter{}, fmt.Errorf("parameter frame too short (%d bytes): %w", frame.Length, ErrMalformed)
	}
	par := Parameter{
		Type:   frame.ID,
		Node:   frame.Data[0],
		Index:  frame.Data[1],
		Meta:   frame.Data[2] >> 4,
		Flags:  frame.Data[2] & 0x0F,
		Length: frame.Length - 3,
	}
	if par.Length > MaxParameterData {
		par.Length = MaxParameterData
	}
	copy(par.Data[:par.Length], frame.Data[3:3+par.Length])
	return par, nil
}
