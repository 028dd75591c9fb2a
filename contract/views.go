package contract

import (
	"strings"

	"github.com/CosmWasm/tinyjson"

	"investor_club/sdk"
)

// -----------------------------------------------------------------------------
// View functions (read-only, no auth, no writes)
// -----------------------------------------------------------------------------

// viewJSON serializes a record for returning to the caller.
func viewJSON(v tinyjson.Marshaler, what string) *string {
	data, err := tinyjson.Marshal(v)
	if err != nil {
		sdk.Abort("failed to encode " + what)
	}
	return strptr(string(data))
}

// GetPoolStatus returns the aggregate snapshot, all zeroes before the
// first investment.
func GetPoolStatus(payload *string) *string {
	_ = payload
	return viewJSON(loadPoolStatus(), "pool status")
}

// GetInvestor returns the record for the given address, or the zero-valued
// default carrying that address when nobody invested yet.
// Example payload: GetInvestor(strptr("hive:alice"))
func GetInvestor(payload *string) *string {
	raw := unwrapPayload(payload, "investor address required")
	addr := parseAddressField(raw, "investor")
	return viewJSON(loadInvestor(addr), "investor")
}

// GetProposal resolves a proposal by id. Unknown ids come back as the id-0
// sentinel record rather than an error.
// Example payload: GetProposal(strptr("1"))
func GetProposal(payload *string) *string {
	raw := unwrapPayload(payload, "proposal id required")
	id := parseUintField(strings.TrimSpace(raw), "proposal id")
	return viewJSON(loadProposal(id), "proposal")
}
