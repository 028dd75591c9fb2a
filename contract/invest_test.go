package contract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investor_club/sdk"
)

func TestInvestAccumulates(t *testing.T) {
	setupContractTest(t)

	investAs(t, alice, 500)

	pool := loadPoolStatus()
	assert.Equal(t, Amount(500), pool.TotalInvested)
	assert.Equal(t, uint64(1), pool.TotalInvestors)

	inv := loadInvestor(alice)
	assert.Equal(t, Amount(500), inv.InvestedAmount)
	assert.Equal(t, uint64(5), inv.VotingPower)

	investAs(t, alice, 250)

	pool = loadPoolStatus()
	assert.Equal(t, Amount(750), pool.TotalInvested)
	assert.Equal(t, uint64(1), pool.TotalInvestors, "top-up must not recount the investor")

	inv = loadInvestor(alice)
	assert.Equal(t, Amount(750), inv.InvestedAmount)
	assert.Equal(t, uint64(7), inv.VotingPower)
}

func TestVotingPowerTruncates(t *testing.T) {
	setupContractTest(t)

	investAs(t, alice, 99)
	assert.Equal(t, uint64(0), loadInvestor(alice).VotingPower, "99 units stay below one vote")

	investAs(t, alice, 1)
	assert.Equal(t, uint64(1), loadInvestor(alice).VotingPower)

	investAs(t, bob, 250)
	assert.Equal(t, uint64(2), loadInvestor(bob).VotingPower)
}

func TestInvestRejectsNonPositiveAmount(t *testing.T) {
	setupContractTest(t)

	for _, amount := range []int64{0, -5} {
		callAs(alice)
		mustRevert(t, ErrInvalidAmount, func() {
			Invest(strptr(fmt.Sprintf("%s|%d", alice, amount)))
		})
	}

	pool := loadPoolStatus()
	assert.Equal(t, Amount(0), pool.TotalInvested)
	assert.Equal(t, uint64(0), pool.TotalInvestors)
	assert.Equal(t, 0, sdk.MockTTLExtensions(), "rejected calls must not touch storage")
}

func TestInvestRequiresPrincipalAuth(t *testing.T) {
	setupContractTest(t)

	callAs(alice)
	mustRevert(t, ErrUnauthorized, func() {
		Invest(strptr(fmt.Sprintf("%s|100", bob)))
	})

	assert.Equal(t, Amount(0), loadInvestor(bob).InvestedAmount)
}

func TestInvestAcceptsMultiAuthTransaction(t *testing.T) {
	setupContractTest(t)

	// bob signs alongside alice; investing as bob is authorized
	sdk.MockNextTx(alice, bob)
	ret := Invest(strptr(fmt.Sprintf("%s|100", bob)))
	require.NotNil(t, ret)
	require.Equal(t, "true", *ret)
	assert.Equal(t, Amount(100), loadInvestor(bob).InvestedAmount)
}

func TestInvestCountsDistinctInvestors(t *testing.T) {
	setupContractTest(t)

	investAs(t, alice, 100)
	investAs(t, bob, 100)
	investAs(t, alice, 100)

	assert.Equal(t, uint64(2), loadPoolStatus().TotalInvestors)
}

func TestInvestSetsJoinedAtOnce(t *testing.T) {
	setupContractTest(t)

	callAs(alice)
	sdk.MockSetTimestamp("1700000000")
	Invest(strptr(fmt.Sprintf("%s|100", alice)))
	joined := loadInvestor(alice).JoinedAt
	assert.Equal(t, int64(1700000000), joined)

	callAs(alice)
	sdk.MockSetTimestamp("1700009999")
	Invest(strptr(fmt.Sprintf("%s|100", alice)))
	assert.Equal(t, joined, loadInvestor(alice).JoinedAt, "joined_at is immutable after first set")
}

func TestInvestExtendsStateRetention(t *testing.T) {
	setupContractTest(t)

	investAs(t, alice, 100)
	investAs(t, alice, 100)

	assert.Equal(t, 2, sdk.MockTTLExtensions())
}

func TestInvestEmitsEvent(t *testing.T) {
	setupContractTest(t)

	investAs(t, alice, 500)

	require.NotEmpty(t, sdk.MockLogs())
	assert.Equal(t, "iv|by:hive:alice|am:500|vp:5|new:1", sdk.MockLogs()[0])
}
