////////////////////////////////////////////////////////////////////////////////
// Investor Club: pooled treasury governance for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

// main is left empty on purpose; the exported contract entrypoints live in
// main_wasm.go and only compile for the wasm target.
func main() {

}
