package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockStateRoundTrip(t *testing.T) {
	MockReset()

	assert.Nil(t, StateGetObject("missing"))

	StateSetObject("k", "v")
	got := StateGetObject("k")
	require.NotNil(t, got)
	assert.Equal(t, "v", *got)

	StateDeleteObject("k")
	assert.Nil(t, StateGetObject("k"))
}

func TestMockNextTxRotatesEnv(t *testing.T) {
	MockReset()

	MockNextTx(Address("hive:alice"))
	first := GetEnv()
	assert.Equal(t, Address("hive:alice"), first.Sender.Address)

	MockNextTx(Address("hive:bob"), Address("hive:carol"))
	second := GetEnv()
	assert.NotEqual(t, first.TxId, second.TxId)
	assert.Equal(t, Address("hive:bob"), second.Sender.Address)
	assert.Contains(t, second.Sender.RequiredAuths, Address("hive:carol"))
}

func TestMockRevertPanicsTyped(t *testing.T) {
	MockReset()

	defer func() {
		r := recover()
		require.NotNil(t, r)
		re, ok := r.(RevertError)
		require.True(t, ok)
		assert.Equal(t, "some_symbol", re.Symbol)
	}()
	Revert("boom", "some_symbol")
}
