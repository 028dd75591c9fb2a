package contract

import "investor_club/sdk"

// Amount is a token quantity in the pool's base units. The host ledger
// settles in int64 units, so all pool math stays in int64 as well.
type Amount int64

// PoolStatus is the singleton aggregate record for the whole contract.
// Its counters are denormalized: they are only ever adjusted in the same
// commit as the investor/proposal writes that justify the adjustment.
type PoolStatus struct {
	TotalInvested     Amount
	TotalInvestors    uint64
	ActiveProposals   uint64
	ExecutedProposals uint64
}

// Investor tracks one principal's cumulative contribution. VotingPower is
// always recomputed from InvestedAmount, never mutated on its own.
type Investor struct {
	Address        sdk.Address
	InvestedAmount Amount
	VotingPower    uint64
	JoinedAt       int64
}

// Proposal is a spending request against the pool. Ids start at 1; id 0 is
// the not-found sentinel. Executed flips one way, false to true.
type Proposal struct {
	ID           uint64
	Title        string
	Description  string
	Amount       Amount
	VotesFor     uint64
	VotesAgainst uint64
	Executed     bool
	CreatedAt    int64
}

type InvestArgs struct {
	Investor sdk.Address
	Amount   Amount
}

type CreateProposalArgs struct {
	Creator     sdk.Address
	Title       string
	Description string
	Amount      Amount
}

type VoteProposalArgs struct {
	Voter      sdk.Address
	ProposalID uint64
	VoteFor    bool
}

type ExecuteProposalArgs struct {
	Executor   sdk.Address
	ProposalID uint64
}

// AddressFromString converts a human string to the platform-specific address wrapper.
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AddressToString turns the wrapped type back into the underlying string.
func AddressToString(a sdk.Address) string { return a.String() }
