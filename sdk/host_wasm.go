//go:build wasm

package sdk

import (
	"encoding/json"
	"strconv"
)

//go:wasmimport sdk console.log
func hostLog(s *string) *string

//go:wasmimport sdk db.set_object
func hostSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func hostGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func hostDeleteObject(key *string) *string

//go:wasmimport sdk db.extend_ttl
func hostExtendTTL(threshold *string, extendTo *string) *string

//go:wasmimport sdk system.get_env
func hostGetEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func hostGetEnvKey(arg *string) *string

//go:wasmimport env abort
func hostAbort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func hostRevert(msg, symbol *string)

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("hello pool")
func Log(s string) {
	hostLog(&s)
}

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("bad payload")
func Abort(msg string) {
	ln := int32(0)
	hostAbort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller with a short symbol.
// Example payload: sdk.Revert("amount must be positive", "invalid_amount")
func Revert(msg string, symbol string) {
	hostRevert(&msg, &symbol)
	panic(symbol + ": " + msg)
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count", "5")
func StateSetObject(key string, value string) {
	hostSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count")
func StateGetObject(key string) *string {
	return hostGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("count")
func StateDeleteObject(key string) {
	hostDeleteObject(&key)
}

// StateExtendTTL renews the retention window of the contract's persisted
// state. This is a storage lifetime hint, not a business invariant.
// Example payload: sdk.StateExtendTTL(5000, 5000)
func StateExtendTTL(threshold uint32, extendTo uint32) {
	th := strconv.FormatUint(uint64(threshold), 10)
	ex := strconv.FormatUint(uint64(extendTo), 10)
	hostExtendTTL(&th, &ex)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	envStr := *hostGetEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)

	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	requiredAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredAuths = append(requiredAuths, Address(addr))
			}
		}
	}
	requiredPostingAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredPostingAuths = append(requiredPostingAuths, Address(addr))
			}
		}
	}

	sender, _ := envMap["msg.sender"].(string)
	env.Sender = Sender{
		Address:              Address(sender),
		RequiredAuths:        requiredAuths,
		RequiredPostingAuths: requiredPostingAuths,
	}
	return env
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("block.timestamp")
func GetEnvKey(key string) *string {
	return hostGetEnvKey(&key)
}
