package contract

import "investor_club/sdk"

// writeBatch collects every record write of one operation and applies them
// in a single step after all precondition checks have passed. Any abort or
// revert before commit therefore leaves storage untouched, which is what
// keeps the denormalized pool counters in lockstep with the registries.
type writeBatch struct {
	writes []stateWrite
}

type stateWrite struct {
	key   string
	value string
}

func newWriteBatch() *writeBatch {
	return &writeBatch{}
}

// set stages a key/value pair. Later writes to the same key win.
func (b *writeBatch) set(key, value string) {
	b.writes = append(b.writes, stateWrite{key: key, value: value})
}

// commit flushes the staged writes to host storage and renews the state
// retention hint. Must be the last thing a mutating operation does.
func (b *writeBatch) commit() {
	for _, w := range b.writes {
		sdk.StateSetObject(w.key, w.value)
	}
	sdk.StateExtendTTL(TTLThreshold, TTLExtendTo)
}
