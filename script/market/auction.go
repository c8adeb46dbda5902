// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package market

import (
	"fmt"
	"math/big"
	"time"

	"github.com/curio-house/curio/curio"
	"github.com/ethereum/go-ethereum/rlp"
)

// Lifecycle of an auction. Finalized and Cancelled are terminal; a record in
// a terminal state is kept forever, never deleted.
const (
	STATE_ACTIVE    = uint8(1)
	STATE_FINALIZED = uint8(2)
	STATE_CANCELLED = uint8(3)
)

func GetStateName(state uint8) string {
	switch state {
	case STATE_ACTIVE:
		return "Active"
	case STATE_FINALIZED:
		return "Finalized"
	case STATE_CANCELLED:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Auction the control record of one auction.
// HighestBid starts at the reserve price and only ever increases while the
// auction is active; HighestBidder is the zero address until the first
// accepted bid.
type Auction struct {
	AuctionID     curio.Bytes32
	AssetID       *big.Int
	Seller        curio.Address
	ReservePrice  *big.Int
	CreateTime    uint64
	Deadline      uint64
	HighestBid    *big.Int
	HighestBidder curio.Address
	State         uint8
	Settled       bool
}

// ID computes the auction id from its creation-time fields.
func (a *Auction) ID() (hash curio.Bytes32) {
	hw := curio.NewBlake2b()
	err := rlp.Encode(hw, []interface{}{
		a.AssetID,
		a.Seller,
		a.ReservePrice,
		a.CreateTime,
		a.Deadline,
	})
	if err != nil {
		return
	}
	hw.Sum(hash[:0])
	return
}

func (a *Auction) IsActive() bool {
	return a.State == STATE_ACTIVE
}

// HasBidder returns whether any bid above the reserve has been accepted.
func (a *Auction) HasBidder() bool {
	return !a.HighestBidder.IsZero()
}

func (a *Auction) ToString() string {
	return fmt.Sprintf("Auction(id=%v, asset=%v, seller=%v, reserve=%v, deadline=%v, highestBid=%v, highestBidder=%v, state=%v, settled=%v)",
		a.AuctionID.AbbrevString(), a.AssetID, a.Seller.AbbrevString(), a.ReservePrice,
		fmt.Sprint(time.Unix(int64(a.Deadline), 0)), a.HighestBid, a.HighestBidder.AbbrevString(),
		GetStateName(a.State), a.Settled)
}

func (a *Auction) String() string {
	return a.ToString()
}
