package contract

import (
	"strconv"

	"github.com/CosmWasm/tinyjson"

	"investor_club/sdk"
)

// loadProposal returns the stored record or the id-0 sentinel with
// placeholder title/description. Callers branch on ID == 0 for not-found.
func loadProposal(id uint64) *Proposal {
	ptr := sdk.StateGetObject(proposalKey(id))
	if ptr == nil || *ptr == "" {
		return &Proposal{
			Title:       NotFoundPlaceholder,
			Description: NotFoundPlaceholder,
		}
	}
	var prpsl Proposal
	if err := tinyjson.Unmarshal([]byte(*ptr), &prpsl); err != nil {
		sdk.Abort("failed to decode proposal")
	}
	return &prpsl
}

// stageProposal queues the record under its id-derived key.
func stageProposal(b *writeBatch, prpsl *Proposal) {
	data, err := tinyjson.Marshal(prpsl)
	if err != nil {
		sdk.Abort("failed to encode proposal")
	}
	b.set(proposalKey(prpsl.ID), string(data))
}

// -----------------------------------------------------------------------------
// Counter Operations
// -----------------------------------------------------------------------------

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// stageCount queues uint64 counters back as decimal strings for the host kv.
// The counter write commits atomically with the proposal it numbered.
func stageCount(b *writeBatch, key string, n uint64) {
	b.set(key, strconv.FormatUint(n, 10))
}
