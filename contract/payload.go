package contract

import (
	"fmt"
	"strconv"
	"strings"

	"investor_club/sdk"
)

// decodeInvestArgs unpacks the pipe-delimited payload `investor|amount`.
func decodeInvestArgs(payload *string) *InvestArgs {
	raw := unwrapPayload(payload, "invest payload requires investor|amount")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("invest payload requires investor|amount")
	}
	return &InvestArgs{
		Investor: parseAddressField(parts[0], "investor"),
		Amount:   parseAmountField(parts[1], "amount"),
	}
}

// decodeCreateProposalArgs unpacks `creator|title|description|amount`.
func decodeCreateProposalArgs(payload *string) *CreateProposalArgs {
	raw := unwrapPayload(payload, "proposal payload requires creator|title|description|amount")
	parts := strings.Split(raw, "|")
	if len(parts) < 4 {
		sdk.Abort("proposal payload requires creator|title|description|amount")
	}
	title := strings.TrimSpace(parts[1])
	if title == "" {
		sdk.Abort("proposal title cannot be empty")
	}
	return &CreateProposalArgs{
		Creator:     parseAddressField(parts[0], "creator"),
		Title:       title,
		Description: strings.TrimSpace(parts[2]),
		Amount:      parseAmountField(parts[3], "amount"),
	}
}

// decodeVoteProposalArgs expects `voter|proposalId|for`.
func decodeVoteProposalArgs(payload *string) *VoteProposalArgs {
	raw := unwrapPayload(payload, "vote payload requires voter|proposalId|for")
	parts := strings.Split(raw, "|")
	if len(parts) < 3 {
		sdk.Abort("vote payload requires voter|proposalId|for")
	}
	return &VoteProposalArgs{
		Voter:      parseAddressField(parts[0], "voter"),
		ProposalID: parseUintField(parts[1], "proposal id"),
		VoteFor:    parseBoolField(parts[2]),
	}
}

// decodeExecuteProposalArgs expects `executor|proposalId`.
func decodeExecuteProposalArgs(payload *string) *ExecuteProposalArgs {
	raw := unwrapPayload(payload, "execute payload requires executor|proposalId")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("execute payload requires executor|proposalId")
	}
	return &ExecuteProposalArgs{
		Executor:   parseAddressField(parts[0], "executor"),
		ProposalID: parseUintField(parts[1], "proposal id"),
	}
}

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// parseAddressField trims and sanity-checks a principal address.
func parseAddressField(val string, field string) sdk.Address {
	addr := AddressFromString(strings.TrimSpace(val))
	if !addr.IsValid() {
		sdk.Abort(fmt.Sprintf("invalid %s address", field))
	}
	return addr
}

// parseAmountField parses a signed token amount; range checks happen later
// in the operations, not here.
func parseAmountField(val string, field string) Amount {
	val = strings.TrimSpace(val)
	if val == "" {
		sdk.Abort(fmt.Sprintf("missing %s", field))
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return Amount(n)
}

// parseUintField is the uint variant used for ids.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseBoolField accepts a couple of truthy keywords, defaulting to false for unknown text.
func parseBoolField(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "y", "for":
		return true
	default:
		return false
	}
}

// strptr is a tiny helper so we can take a literal string and hand a pointer to sdk calls quickly.
func strptr(s string) *string { return &s }

// UInt64ToString turns an id back into decimal text for returns and logs.
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}
