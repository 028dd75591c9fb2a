package contract

import "investor_club/sdk"

// Storage key prefixes. Single byte plus little-endian id (or raw address
// bytes) keeps keys compact and groups each record family in the host kv.
const (
	// kPoolStatus stores the singleton PoolStatus aggregate.
	kPoolStatus byte = 0x01
	// kInvestor houses encoded Investor records keyed by address.
	kInvestor byte = 0x02
	// kProposal contains encoded Proposal records keyed by numeric id.
	kProposal byte = 0x10
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// poolStatusKey is the fixed singleton key for the aggregate record.
func poolStatusKey() string {
	return string([]byte{kPoolStatus})
}

// investorKey mixes the prefix with raw address bytes to avoid nested maps
// in host storage.
func investorKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kInvestor)
	buf = append(buf, addrStr...)
	return string(buf)
}

// proposalKey builds a storage key string for a proposal by id.
func proposalKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProposal
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}
