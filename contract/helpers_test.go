package contract

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"investor_club/sdk"
)

const (
	alice    = sdk.Address("hive:alice")
	bob      = sdk.Address("hive:bob")
	carol    = sdk.Address("hive:carol")
	outsider = sdk.Address("hive:outsider")
)

// setupContractTest wipes the mock host and the per-tx env cache so tests
// never see each other's state.
func setupContractTest(t *testing.T) {
	t.Helper()
	sdk.MockReset()
	cachedEnvLoaded = false
}

// callAs begins a fresh mock transaction signed by addr, mirroring how
// every on-chain call arrives under a new tx id.
func callAs(addr sdk.Address) {
	sdk.MockNextTx(addr)
}

func investAs(t *testing.T, addr sdk.Address, amount int64) {
	t.Helper()
	callAs(addr)
	ret := Invest(strptr(fmt.Sprintf("%s|%d", addr, amount)))
	require.NotNil(t, ret)
	require.Equal(t, "true", *ret)
}

func createProposalAs(t *testing.T, addr sdk.Address, title, desc string, amount int64) uint64 {
	t.Helper()
	callAs(addr)
	ret := CreateProposal(strptr(fmt.Sprintf("%s|%s|%s|%d", addr, title, desc, amount)))
	require.NotNil(t, ret)
	id, err := strconv.ParseUint(*ret, 10, 64)
	require.NoError(t, err)
	return id
}

func voteAs(t *testing.T, addr sdk.Address, proposalID uint64, voteFor bool) {
	t.Helper()
	callAs(addr)
	ret := VoteProposal(strptr(fmt.Sprintf("%s|%d|%t", addr, proposalID, voteFor)))
	require.NotNil(t, ret)
	require.Equal(t, "voted", *ret)
}

func executeAs(t *testing.T, addr sdk.Address, proposalID uint64) {
	t.Helper()
	callAs(addr)
	ret := ExecuteProposal(strptr(fmt.Sprintf("%s|%d", addr, proposalID)))
	require.NotNil(t, ret)
	require.Equal(t, "executed", *ret)
}

// mustRevert asserts that fn reverts with the given error symbol.
func mustRevert(t *testing.T, symbol string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected revert %q, call succeeded", symbol)
		re, ok := r.(sdk.RevertError)
		require.True(t, ok, "expected a revert, got panic %v", r)
		require.Equal(t, symbol, re.Symbol)
	}()
	fn()
}

// mustAbort asserts that fn traps with an abort (malformed input path).
func mustAbort(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected abort, call succeeded")
		_, ok := r.(sdk.AbortError)
		require.True(t, ok, "expected an abort, got panic %v", r)
	}()
	fn()
}
