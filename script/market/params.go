package market

import "github.com/curio-house/curio/curio"

// the global variables in market
var (
	AuctionListKey = curio.Blake2b([]byte("auction-list-key"))

	// event topic0 of the market event logs
	AuctionCreatedEvent   = curio.Blake2b([]byte("AuctionCreated"))
	BidPlacedEvent        = curio.Blake2b([]byte("BidPlaced"))
	AuctionFinalizedEvent = curio.Blake2b([]byte("AuctionFinalized"))
	AuctionCancelledEvent = curio.Blake2b([]byte("AuctionCancelled"))
)

const (
	OP_CREATE   = uint32(1)
	OP_BID      = uint32(2)
	OP_FINALIZE = uint32(3)
	OP_WITHDRAW = uint32(4)
)

func GetOpName(op uint32) string {
	switch op {
	case OP_CREATE:
		return "Create"
	case OP_BID:
		return "Bid"
	case OP_FINALIZE:
		return "Finalize"
	case OP_WITHDRAW:
		return "Withdraw"
	default:
		return "Unknown"
	}
}
