package canfix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemParamEnableStore(t *testing.T) {
	store := NewMemParamEnableStore()
	assert.False(t, store.Enabled(0x184))

	store.SetEnabled(0x184, true)
	assert.True(t, store.Enabled(0x184))

	store.SetEnabled(0x184, false)
	assert.False(t, store.Enabled(0x184))
}

func TestEnableDisableOpcodesUpdateStore(t *testing.T) {
	n, _ := newTestNode(t)
	store := NewMemParamEnableStore()
	n.SetParamEnableStore(store)

	// Enable parameter 0x0184
	n.Exec(NewFrame(0x703, []byte{0x04, 0x23, 0x84, 0x01, 0x00}))
	assert.True(t, store.Enabled(0x0184))

	// Disable parameter 0x0184
	n.Exec(NewFrame(0x703, []byte{0x03, 0x23, 0x84, 0x01, 0x00}))
	assert.False(t, store.Enabled(0x0184))
}
