package contract

import "investor_club/sdk"

// -----------------------------------------------------------------------------
// Invest: join the pool (or top up) and gain voting power
// -----------------------------------------------------------------------------

// votingPowerOf derives vote weight from the cumulative stake. One vote per
// 100 units, truncating, so weight never drifts from the invested amount.
func votingPowerOf(invested Amount) uint64 {
	return uint64(invested / VotingPowerDivisor)
}

// Invest adds the amount to the caller's cumulative stake and the pool
// total. First-time investors get their join timestamp and bump the
// distinct-investor counter. There is no failure path after validation;
// repeated calls simply accumulate.
// Example payload: Invest(strptr("hive:alice|500"))
func Invest(payload *string) *string {
	input := decodeInvestArgs(payload)
	requireAuth(input.Investor)

	if input.Amount <= 0 {
		sdk.Revert("investment amount must be positive", ErrInvalidAmount)
	}

	now := nowUnix()
	pool := loadPoolStatus()
	investor := loadInvestor(input.Investor)

	isNewInvestor := investor.InvestedAmount == 0

	investor.InvestedAmount += input.Amount
	investor.VotingPower = votingPowerOf(investor.InvestedAmount)

	if isNewInvestor {
		investor.JoinedAt = now
		pool.TotalInvestors++
	}
	pool.TotalInvested += input.Amount

	batch := newWriteBatch()
	stageInvestor(batch, investor)
	stagePoolStatus(batch, pool)
	batch.commit()

	emitInvested(AddressToString(input.Investor), input.Amount, investor.VotingPower, isNewInvestor)
	return strptr("true")
}
