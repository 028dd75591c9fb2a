package contract

import (
	"fmt"

	"investor_club/sdk"
)

// emitInvested leaves a short iv line so indexers can track stake growth
// without scanning storage diffs.
func emitInvested(investor string, amount Amount, votingPower uint64, newInvestor bool) {
	flag := "0"
	if newInvestor {
		flag = "1"
	}
	sdk.Log(fmt.Sprintf(
		"iv|by:%s|am:%d|vp:%d|new:%s",
		investor,
		amount,
		votingPower,
		flag,
	))
}

// emitProposalCreated keeps observers updated with a pc line for every new spending request.
func emitProposalCreated(proposalId uint64, creator string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"pc|id:%d|by:%s|am:%d",
		proposalId,
		creator,
		amount,
	))
}

// emitVoteCast includes direction plus weight so tallies can be replayed from logs only.
func emitVoteCast(proposalId uint64, voter string, voteFor bool, weight uint64) {
	side := "n"
	if voteFor {
		side = "y"
	}
	sdk.Log(fmt.Sprintf(
		"v|id:%d|by:%s|s:%s|w:%d",
		proposalId,
		voter,
		side,
		weight,
	))
}

// emitProposalExecuted signals the terminal state flip and the treasury draw-down.
func emitProposalExecuted(proposalId uint64, executor string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"px|id:%d|by:%s|am:%d",
		proposalId,
		executor,
		amount,
	))
}
