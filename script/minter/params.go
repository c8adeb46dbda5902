package minter

import "github.com/curio-house/curio/curio"

// the global variables in minter
var (
	MintCounterKey = curio.Blake2b([]byte("mint-counter-key"))

	// MintedEvent topic0 of the Minted event log.
	MintedEvent = curio.Blake2b([]byte("Minted"))
)

const (
	OP_MINT = uint32(1)
)

func GetOpName(op uint32) string {
	switch op {
	case OP_MINT:
		return "Mint"
	default:
		return "Unknown"
	}
}
