//go:build !wasm

package sdk

import (
	"fmt"
	"strconv"
)

// mockHost stands in for the chain runtime on non-wasm builds so the
// contract logic stays testable with plain `go test`. State lives in a
// flat map exactly like the host kv store; env values are settable from
// test helpers.
type mockHost struct {
	state         map[string]string
	env           Env
	logs          []string
	ttlExtensions int
	txCounter     uint64
}

func newMockHost() *mockHost {
	return &mockHost{
		state: map[string]string{},
		env: Env{
			ContractId:  "contract:investor_club",
			TxId:        "tx-0",
			BlockId:     "block-0",
			BlockHeight: 0,
			Timestamp:   "2025-01-01T00:00:00",
			Sender: Sender{
				Address:       Address("hive:test_sender"),
				RequiredAuths: []Address{Address("hive:test_sender")},
			},
		},
	}
}

var mock = newMockHost()

// AbortError is what the mock host panics with on sdk.Abort.
type AbortError struct {
	Msg string
}

func (e AbortError) Error() string { return "abort: " + e.Msg }

// RevertError is what the mock host panics with on sdk.Revert. The Symbol
// matches the short error code the real host would surface.
type RevertError struct {
	Msg    string
	Symbol string
}

func (e RevertError) Error() string { return e.Symbol + ": " + e.Msg }

// Log records the message so tests can assert emitted events.
func Log(s string) {
	mock.logs = append(mock.logs, s)
}

// Abort stops execution immediately, mirroring the wasm host trap.
func Abort(msg string) {
	panic(AbortError{Msg: msg})
}

// Revert throws a named error back to the caller with a short symbol.
func Revert(msg string, symbol string) {
	panic(RevertError{Msg: msg, Symbol: symbol})
}

// StateSetObject stores a key/value string pair into the mock kv store.
func StateSetObject(key string, value string) {
	mock.state[key] = value
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	val, ok := mock.state[key]
	if !ok {
		return nil
	}
	return &val
}

// StateDeleteObject removes the key entirely.
func StateDeleteObject(key string) {
	delete(mock.state, key)
}

// StateExtendTTL counts retention renewals so tests can verify every
// successful write path issues the hint.
func StateExtendTTL(threshold uint32, extendTo uint32) {
	_ = threshold
	_ = extendTo
	mock.ttlExtensions++
}

// GetEnv returns the current mock environment snapshot.
func GetEnv() Env {
	return mock.env
}

// GetEnvKey serves single env keys the way the host does.
func GetEnvKey(key string) *string {
	switch key {
	case "contract.id":
		return &mock.env.ContractId
	case "tx.id":
		return &mock.env.TxId
	case "block.id":
		return &mock.env.BlockId
	case "block.height":
		v := strconv.FormatUint(mock.env.BlockHeight, 10)
		return &v
	case "block.timestamp":
		return &mock.env.Timestamp
	default:
		return nil
	}
}

// -----------------------------------------------------------------------------
// Test helpers
// -----------------------------------------------------------------------------

// MockReset wipes state, logs and env back to the defaults.
func MockReset() {
	mock = newMockHost()
}

// MockNextTx starts a fresh transaction signed by sender. Extra addresses
// are added to required_auths, mirroring multi-auth hive transactions.
func MockNextTx(sender Address, extraAuths ...Address) {
	mock.txCounter++
	mock.env.TxId = fmt.Sprintf("tx-%d", mock.txCounter)
	mock.env.Sender = Sender{
		Address:       sender,
		RequiredAuths: append([]Address{sender}, extraAuths...),
	}
}

// MockSetTimestamp overrides block.timestamp for time-sensitive tests.
func MockSetTimestamp(ts string) {
	mock.env.Timestamp = ts
}

// MockLogs returns everything written through sdk.Log since the last reset.
func MockLogs() []string {
	return mock.logs
}

// MockTTLExtensions reports how often StateExtendTTL ran since the last reset.
func MockTTLExtensions() int {
	return mock.ttlExtensions
}
