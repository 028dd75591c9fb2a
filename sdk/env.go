package sdk

// Sender carries the signing identity of the current call.
type Sender struct {
	Address              Address   `json:"id"`
	RequiredAuths        []Address `json:"required_auths"`
	RequiredPostingAuths []Address `json:"required_posting_auths"`
}

// Env is the per-transaction execution environment snapshot handed to us
// by the host. Timestamp stays a string because the host flips between
// unix seconds and iso formats.
type Env struct {
	ContractId  string `json:"contract.id"`
	TxId        string `json:"tx.id"`
	BlockId     string `json:"block.id"`
	BlockHeight uint64 `json:"block.height"`
	Timestamp   string `json:"block.timestamp"`
	Sender      Sender `json:"-"`
}
