package contract

import (
	"github.com/CosmWasm/tinyjson"

	"investor_club/sdk"
)

// loadInvestor returns the stored record or a zero-valued one carrying the
// queried address. Absence is a successful read here, not an error; the
// registry itself never validates amounts, that is the operations' job.
func loadInvestor(addr sdk.Address) *Investor {
	ptr := sdk.StateGetObject(investorKey(addr))
	if ptr == nil || *ptr == "" {
		return &Investor{Address: addr}
	}
	var inv Investor
	if err := tinyjson.Unmarshal([]byte(*ptr), &inv); err != nil {
		sdk.Abort("failed to decode investor")
	}
	return &inv
}

// stageInvestor queues the record under its address-derived key.
func stageInvestor(b *writeBatch, inv *Investor) {
	data, err := tinyjson.Marshal(inv)
	if err != nil {
		sdk.Abort("failed to encode investor")
	}
	b.set(investorKey(inv.Address), string(data))
}
