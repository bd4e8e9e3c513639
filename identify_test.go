package canfix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendIdentificationNoDescription(t *testing.T) {
	n, sent := newTestNode(t)
	require.NoError(t, n.SendIdentification(0))
	require.Len(t, *sent, 1, "no description set means only the header frame is sent")
}

func TestSendIdentificationDescriptionStreaming(t *testing.T) {
	n, sent := newTestNode(t)
	text := "Outside Air Temperature"
	n.SetDescription(text)

	paddedLen := len(text) + 1
	if rem := paddedLen % descChunkSize; rem != 0 {
		paddedLen += descChunkSize - rem
	}
	wantChunks := paddedLen / descChunkSize

	require.NoError(t, n.SendIdentification(0))
	require.Len(t, *sent, 1+wantChunks)

	descFrames := (*sent)[1:]
	var rebuilt []byte
	for i, frame := range descFrames {
		assert.EqualValues(t, OpDescription, frame.Data[0])
		packet := int(frame.Data[1]) | int(frame.Data[2])<<8
		assert.Equal(t, i, packet, "packets must be strictly increasing")
		rebuilt = append(rebuilt, frame.Data[3:7]...)
	}

	nul := -1
	for i, b := range rebuilt {
		if b == 0 {
			nul = i
			break
		}
	}
	require.GreaterOrEqual(t, nul, 0, "reassembled description must contain a NUL terminator")
	assert.Equal(t, "Outside Air Temperature", string(rebuilt[:nul]))
}

func TestSendIdentificationDescriptionExactMultipleOfFour(t *testing.T) {
	n, sent := newTestNode(t)
	n.SetDescription("ABCD") // 4 chars, needs one extra padded chunk for the NUL

	require.NoError(t, n.SendIdentification(0))
	require.Len(t, *sent, 1+2)

	last := (*sent)[len(*sent)-1]
	assert.Equal(t, []byte{0, 0, 0, 0}, last.Data[3:7])
}
