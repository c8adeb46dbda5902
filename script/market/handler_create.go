// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package market

import (
	"github.com/curio-house/curio/curio"
)

// CreateAuction opens an auction for an asset the caller owns. The asset
// moves into market custody for the whole auction lifetime, so it cannot be
// transferred or re-auctioned until finalize returns or settles it.
func (mb *MarketBody) CreateAuction(env *MarketEnv, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
	}()
	market := env.GetMarket()
	st := env.GetState()
	seller := env.GetTxCtx().Origin

	if gas < curio.ClauseGas {
		leftOverGas = 0
	} else {
		leftOverGas = gas - curio.ClauseGas
	}

	if mb.Duration == 0 || mb.Duration > curio.MaxAuctionDuration {
		log.Info("invalid duration", "duration", mb.Duration, "max", curio.MaxAuctionDuration)
		err = ErrInvalidDuration
		return
	}
	if mb.ReservePrice.Cmp(curio.MaxUint256) > 0 {
		err = ErrOverflow
		return
	}

	owner, err := market.registry.OwnerOf(st, mb.AssetID)
	if err != nil {
		return
	}
	if owner != seller {
		log.Info("not the asset owner", "asset", mb.AssetID, "owner", owner, "caller", seller)
		err = ErrNotOwner
		return
	}

	now := env.Now()
	auction := &Auction{
		AssetID:       mb.AssetID,
		Seller:        seller,
		ReservePrice:  mb.ReservePrice,
		CreateTime:    now,
		Deadline:      now + mb.Duration,
		HighestBid:    mb.ReservePrice,
		HighestBidder: curio.Address{},
		State:         STATE_ACTIVE,
		Settled:       false,
	}
	auction.AuctionID = auction.ID()

	if market.GetAuction(st, auction.AuctionID) != nil {
		err = errAuctionExists
		return
	}

	// custody for the auction lifetime
	if err = market.registry.TransferOwnership(st, mb.AssetID, seller, curio.MarketAccountAddr); err != nil {
		return
	}

	market.appendAuctionID(auction.AuctionID, st)
	market.SetAuction(auction, st)

	env.AddEvent(curio.MarketAccountAddr,
		[]curio.Bytes32{AuctionCreatedEvent, auction.AuctionID, curio.BytesToBytes32(seller.Bytes())},
		mb.AssetID.Bytes())

	auctionsCreatedCounter.Inc()
	log.Info("created auction", "id", auction.AuctionID.AbbrevString(), "asset", mb.AssetID, "seller", seller, "deadline", auction.Deadline)

	ret = auction.AuctionID.Bytes()
	return
}
