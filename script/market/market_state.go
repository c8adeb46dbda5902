// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package market

import (
	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/state"
	"github.com/ethereum/go-ethereum/rlp"
)

func auctionKey(id curio.Bytes32) curio.Bytes32 {
	return curio.Blake2b([]byte("auction-record"), id.Bytes())
}

// GetAuction loads an auction record, nil if the id is unknown.
func (m *Market) GetAuction(st *state.State, id curio.Bytes32) (result *Auction) {
	st.DecodeStorage(curio.MarketAccountAddr, auctionKey(id), func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		auction := Auction{}
		if err := rlp.DecodeBytes(raw, &auction); err != nil {
			m.logger.Warn("could not decode auction record", "id", id, "err", err)
			return err
		}
		result = &auction
		return nil
	})
	return
}

func (m *Market) SetAuction(auction *Auction, st *state.State) {
	st.EncodeStorage(curio.MarketAccountAddr, auctionKey(auction.AuctionID), func() ([]byte, error) {
		return rlp.EncodeToBytes(auction)
	})
}

// GetAuctionIDs loads the ids of every auction ever created, oldest first.
func (m *Market) GetAuctionIDs(st *state.State) (ids []curio.Bytes32) {
	st.DecodeStorage(curio.MarketAccountAddr, AuctionListKey, func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, &ids)
	})
	return
}

func (m *Market) appendAuctionID(id curio.Bytes32, st *state.State) {
	ids := append(m.GetAuctionIDs(st), id)
	st.EncodeStorage(curio.MarketAccountAddr, AuctionListKey, func() ([]byte, error) {
		return rlp.EncodeToBytes(ids)
	})
}
