package canfix

// identVersion is the fixed third byte of the identification header
// frame. The protocol does not otherwise name it; it has been constant
// across every identification frame this core has ever produced.
const identVersion = 0x01

// descChunkSize is the number of description characters packed per
// follow-up frame (spec §4.3).
const descChunkSize = 4

// sendIdentification emits the identification header frame and, if a
// description has been set, one or more follow-up frames streaming it in
// 4-character chunks. The whole send is atomic from the core's point of
// view: spec §5 requires the host not to re-enter the core while this
// runs.
func (n *NodeContext) sendIdentification(dest uint8) error {
	var model [3]byte
	model[0] = byte(n.model)
	model[1] = byte(n.model >> 8)
	model[2] = byte(n.model >> 16)

	header := []byte{OpIdentify, dest, identVersion, n.device, n.revision, model[0], model[1], model[2]}
	if err := n.write(NewFrame(n.replyID(), header)); err != nil {
		return err
	}

	if len(n.description) == 0 {
		return nil
	}
	return n.sendDescription()
}

// sendDescription streams the node description in 4-character chunks
// terminated by a NUL byte, per spec §4.3: the final chunk is zero
// padded so the terminating NUL is present and 4-byte alignment is
// preserved, and transmission stops at the chunk containing it.
func (n *NodeContext) sendDescription() error {
	padded := append(append([]byte(nil), n.description...), 0)
	if rem := len(padded) % descChunkSize; rem != 0 {
		padded = append(padded, make([]byte, descChunkSize-rem)...)
	}

	for packet := 0; packet*descChunkSize < len(padded); packet++ {
		chunk := padded[packet*descChunkSize : packet*descChunkSize+descChunkSize]
		data := []byte{OpDescription, byte(packet), byte(packet >> 8)}
		data = append(data, chunk...)
		if err := n.write(NewFrame(n.replyID(), data)); err != nil {
			return err
		}
	}
	return nil
}
