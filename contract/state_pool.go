package contract

import (
	"github.com/CosmWasm/tinyjson"

	"investor_club/sdk"
)

// loadPoolStatus returns the stored aggregate or an all-zero default. The
// singleton is created lazily on first access and never deleted.
func loadPoolStatus() *PoolStatus {
	ptr := sdk.StateGetObject(poolStatusKey())
	if ptr == nil || *ptr == "" {
		return &PoolStatus{}
	}
	var pool PoolStatus
	if err := tinyjson.Unmarshal([]byte(*ptr), &pool); err != nil {
		sdk.Abort("failed to decode pool status")
	}
	return &pool
}

// stagePoolStatus queues the aggregate for the operation's commit. The
// ledger is never recomputed from the registries; it is only adjusted
// incrementally alongside the registry writes that justify the delta.
func stagePoolStatus(b *writeBatch, pool *PoolStatus) {
	data, err := tinyjson.Marshal(pool)
	if err != nil {
		sdk.Abort("failed to encode pool status")
	}
	b.set(poolStatusKey(), string(data))
}
