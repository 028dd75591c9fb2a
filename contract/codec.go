package contract

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"
)

// Hand-rolled tinyjson codecs for the three record types. tinyjson's
// jwriter/jlexer runtime works without reflection, which keeps the wasm
// build lean and the record layout deterministic. Field names mirror the
// on-chain record fields (snake_case).

// MarshalTinyJSON encodes the pool aggregate.
func (v *PoolStatus) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"total_invested":`)
	w.Int64(int64(v.TotalInvested))
	w.RawString(`,"total_investors":`)
	w.Uint64(v.TotalInvestors)
	w.RawString(`,"active_proposals":`)
	w.Uint64(v.ActiveProposals)
	w.RawString(`,"executed_proposals":`)
	w.Uint64(v.ExecutedProposals)
	w.RawByte('}')
}

// UnmarshalTinyJSON decodes the pool aggregate, skipping unknown fields so
// layout additions stay backwards compatible.
func (v *PoolStatus) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "total_invested":
			v.TotalInvested = Amount(in.Int64())
		case "total_investors":
			v.TotalInvestors = in.Uint64()
		case "active_proposals":
			v.ActiveProposals = in.Uint64()
		case "executed_proposals":
			v.ExecutedProposals = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON encodes a single investor record.
func (v *Investor) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"address":`)
	w.String(v.Address.String())
	w.RawString(`,"invested_amount":`)
	w.Int64(int64(v.InvestedAmount))
	w.RawString(`,"voting_power":`)
	w.Uint64(v.VotingPower)
	w.RawString(`,"joined_at":`)
	w.Int64(v.JoinedAt)
	w.RawByte('}')
}

// UnmarshalTinyJSON decodes a single investor record.
func (v *Investor) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "address":
			v.Address = AddressFromString(in.String())
		case "invested_amount":
			v.InvestedAmount = Amount(in.Int64())
		case "voting_power":
			v.VotingPower = in.Uint64()
		case "joined_at":
			v.JoinedAt = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON encodes a proposal record.
func (v *Proposal) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawByte('{')
	w.RawString(`"proposal_id":`)
	w.Uint64(v.ID)
	w.RawString(`,"title":`)
	w.String(v.Title)
	w.RawString(`,"description":`)
	w.String(v.Description)
	w.RawString(`,"amount":`)
	w.Int64(int64(v.Amount))
	w.RawString(`,"votes_for":`)
	w.Uint64(v.VotesFor)
	w.RawString(`,"votes_against":`)
	w.Uint64(v.VotesAgainst)
	w.RawString(`,"is_executed":`)
	w.Bool(v.Executed)
	w.RawString(`,"created_at":`)
	w.Int64(v.CreatedAt)
	w.RawByte('}')
}

// UnmarshalTinyJSON decodes a proposal record.
func (v *Proposal) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "proposal_id":
			v.ID = in.Uint64()
		case "title":
			v.Title = in.String()
		case "description":
			v.Description = in.String()
		case "amount":
			v.Amount = Amount(in.Int64())
		case "votes_for":
			v.VotesFor = in.Uint64()
		case "votes_against":
			v.VotesAgainst = in.Uint64()
		case "is_executed":
			v.Executed = in.Bool()
		case "created_at":
			v.CreatedAt = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}
