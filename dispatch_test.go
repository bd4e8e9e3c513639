package canfix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecInvokesAlarmHandler(t *testing.T) {
	n, _ := newTestNode(t)
	var gotNode, gotCode uint16
	var gotPayload []byte
	n.SetAlarmCallback(func(node, code uint16, payload []byte) {
		gotNode, gotCode = node, code
		gotPayload = append([]byte(nil), payload...)
	})

	n.Exec(NewFrame(0x42, []byte{0x34, 0x12, 0xAA, 0xBB}))

	assert.EqualValues(t, 0x42, gotNode)
	assert.EqualValues(t, 0x1234, gotCode)
	assert.Equal(t, []byte{0xAA, 0xBB}, gotPayload)
}

func TestExecIgnoresReservedIdentifier(t *testing.T) {
	n, sent := newTestNode(t)
	called := false
	n.SetAlarmCallback(func(uint16, uint16, []byte) { called = true })
	n.SetParameterCallback(func(Parameter) { called = true })

	n.Exec(NewFrame(0x000, []byte{1, 2, 3}))

	assert.False(t, called)
	assert.Empty(t, *sent)
}

func TestExecDropsMalformedParameterFrame(t *testing.T) {
	n, _ := newTestNode(t)
	called := false
	n.SetParameterCallback(func(Parameter) { called = true })

	n.Exec(NewFrame(0x184, []byte{0x11, 0x00})) // length 2, needs >= 3

	assert.False(t, called)
}

func TestHandleImplementsFrameListener(t *testing.T) {
	n, _ := newTestNode(t)
	var listener FrameListener = n
	called := false
	n.SetReportCallback(func() { called = true })
	listener.Handle(NewFrame(0x703, []byte{0x05, 0x23}))
	assert.True(t, called)
}
