package contract

import "investor_club/sdk"

// -----------------------------------------------------------------------------
// Create Proposal
// -----------------------------------------------------------------------------

// CreateProposal opens a new spending request against the pool. The
// requested amount is stored as-is and checked against the pool balance
// only at execution time, so proposals may be created speculatively ahead
// of sufficient funds. Ids are handed out sequentially starting at 1; id 0
// stays reserved as the not-found sentinel.
// Example payload: CreateProposal(strptr("hive:alice|New rig|Buy a mining rig|300"))
func CreateProposal(payload *string) *string {
	input := decodeCreateProposalArgs(payload)
	requireAuth(input.Creator)

	creator := loadInvestor(input.Creator)
	if creator.InvestedAmount <= 0 {
		sdk.Revert("only investors can create proposals", ErrNotAnInvestor)
	}

	id := getCount(ProposalsCount) + 1
	pool := loadPoolStatus()

	prpsl := &Proposal{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Amount:      input.Amount,
		CreatedAt:   nowUnix(),
	}
	pool.ActiveProposals++

	batch := newWriteBatch()
	stageProposal(batch, prpsl)
	stageCount(batch, ProposalsCount, id)
	stagePoolStatus(batch, pool)
	batch.commit()

	emitProposalCreated(id, AddressToString(input.Creator), input.Amount)
	return strptr(UInt64ToString(id))
}

// -----------------------------------------------------------------------------
// Vote Proposal
// -----------------------------------------------------------------------------

// VoteProposal adds the voter's current voting power to one side of the
// tally. Weight is re-read at vote time and there is no per-voter receipt,
// so repeated calls keep stacking weight; that matches the deployed
// contract's behavior.
// Example payload: VoteProposal(strptr("hive:bob|1|for"))
func VoteProposal(payload *string) *string {
	input := decodeVoteProposalArgs(payload)
	requireAuth(input.Voter)

	voter := loadInvestor(input.Voter)
	if voter.InvestedAmount <= 0 {
		sdk.Revert("only investors can vote", ErrNotAnInvestor)
	}

	prpsl := loadProposal(input.ProposalID)
	if prpsl.ID == 0 {
		sdk.Revert("proposal not found", ErrProposalNotFound)
	}
	if prpsl.Executed {
		sdk.Revert("proposal already executed", ErrAlreadyExecuted)
	}

	if input.VoteFor {
		prpsl.VotesFor += voter.VotingPower
	} else {
		prpsl.VotesAgainst += voter.VotingPower
	}

	batch := newWriteBatch()
	stageProposal(batch, prpsl)
	batch.commit()

	emitVoteCast(prpsl.ID, AddressToString(input.Voter), input.VoteFor, voter.VotingPower)
	return strptr("voted")
}

// -----------------------------------------------------------------------------
// Execute Proposal
// -----------------------------------------------------------------------------

// ExecuteProposal settles an approved proposal: strict for-majority plus a
// funded pool at this very moment. Any authenticated principal may trigger
// it, not just the creator. All checks run before any write is staged, so
// a failing call leaves every record exactly as it was.
// Example payload: ExecuteProposal(strptr("hive:carol|1"))
func ExecuteProposal(payload *string) *string {
	input := decodeExecuteProposalArgs(payload)
	requireAuth(input.Executor)

	prpsl := loadProposal(input.ProposalID)
	pool := loadPoolStatus()

	if prpsl.ID == 0 {
		sdk.Revert("proposal not found", ErrProposalNotFound)
	}
	if prpsl.Executed {
		sdk.Revert("proposal already executed", ErrAlreadyExecuted)
	}
	if prpsl.VotesFor <= prpsl.VotesAgainst {
		sdk.Revert("proposal not approved", ErrNotApproved)
	}
	if pool.TotalInvested < prpsl.Amount {
		sdk.Revert("insufficient pool funds", ErrInsufficientFunds)
	}

	prpsl.Executed = true
	pool.ActiveProposals--
	pool.ExecutedProposals++
	pool.TotalInvested -= prpsl.Amount

	batch := newWriteBatch()
	stageProposal(batch, prpsl)
	stagePoolStatus(batch, pool)
	batch.commit()

	emitProposalExecuted(prpsl.ID, AddressToString(input.Executor), prpsl.Amount)
	return strptr("executed")
}
