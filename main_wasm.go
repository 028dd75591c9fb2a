//go:build wasm

package main

import "investor_club/contract"

// -----------------------------------------------------------------------------
// Contract entrypoints
// -----------------------------------------------------------------------------

//go:wasmexport invest
func invest(payload *string) *string {
	return contract.Invest(payload)
}

//go:wasmexport proposal_create
func proposalCreate(payload *string) *string {
	return contract.CreateProposal(payload)
}

//go:wasmexport proposal_vote
func proposalVote(payload *string) *string {
	return contract.VoteProposal(payload)
}

//go:wasmexport proposal_execute
func proposalExecute(payload *string) *string {
	return contract.ExecuteProposal(payload)
}

//go:wasmexport pool_status_get
func poolStatusGet(payload *string) *string {
	return contract.GetPoolStatus(payload)
}

//go:wasmexport investor_get
func investorGet(payload *string) *string {
	return contract.GetInvestor(payload)
}

//go:wasmexport proposal_get
func proposalGet(payload *string) *string {
	return contract.GetProposal(payload)
}
