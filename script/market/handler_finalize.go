// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package market

import (
	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/royalty"
)

// FinalizeAuction settles an auction past its deadline. Callable by anyone,
// so settlement liveness never depends on a single actor. With no bid above
// the reserve the asset goes back to the seller and no funds move; otherwise
// the sale price is split between creator royalty and seller proceeds, both
// payable through escrow, and the asset goes to the winner.
func (mb *MarketBody) FinalizeAuction(env *MarketEnv, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
	}()
	market := env.GetMarket()
	st := env.GetState()

	if gas < curio.ClauseGas {
		leftOverGas = 0
	} else {
		leftOverGas = gas - curio.ClauseGas
	}

	auction := market.GetAuction(st, mb.AuctionID)
	if auction == nil {
		err = ErrAuctionNotFound
		return
	}
	if auction.Settled || !auction.IsActive() {
		log.Info("already settled", "id", mb.AuctionID.AbbrevString(), "state", GetStateName(auction.State))
		err = ErrAlreadySettled
		return
	}
	if env.Now() < auction.Deadline {
		log.Info("auction still active", "id", mb.AuctionID.AbbrevString(), "deadline", auction.Deadline, "now", env.Now())
		err = ErrAuctionStillActive
		return
	}

	if !auction.HasBidder() {
		// nothing above reserve: hand the asset back, no funds move
		if err = market.registry.TransferOwnership(st, auction.AssetID, curio.MarketAccountAddr, auction.Seller); err != nil {
			log.Error("could not return asset custody", "asset", auction.AssetID, "err", err)
			return
		}
		auction.State = STATE_CANCELLED
		market.SetAuction(auction, st)

		env.AddEvent(curio.MarketAccountAddr,
			[]curio.Bytes32{AuctionCancelledEvent, auction.AuctionID},
			nil)
		auctionsFinalizedCounter.Inc()
		log.Info("cancelled auction without bids", "id", auction.AuctionID.AbbrevString())
		return
	}

	bps, err := market.registry.RoyaltyOf(st, auction.AssetID)
	if err != nil {
		return
	}
	creator, err := market.registry.CreatorOf(st, auction.AssetID)
	if err != nil {
		return
	}
	creatorAmount, sellerAmount := royalty.Split(auction.HighestBid, bps)

	if err = market.escrow.Credit(env.ScriptEnv, curio.MarketAccountAddr, creator, creatorAmount); err != nil {
		log.Error("could not credit royalty", "creator", creator, "err", err)
		return
	}
	if err = market.escrow.Credit(env.ScriptEnv, curio.MarketAccountAddr, auction.Seller, sellerAmount); err != nil {
		log.Error("could not credit proceeds", "seller", auction.Seller, "err", err)
		return
	}

	if err = market.registry.TransferOwnership(st, auction.AssetID, curio.MarketAccountAddr, auction.HighestBidder); err != nil {
		log.Error("could not transfer asset to winner", "asset", auction.AssetID, "err", err)
		return
	}

	auction.State = STATE_FINALIZED
	auction.Settled = true
	market.SetAuction(auction, st)

	env.AddEvent(curio.MarketAccountAddr,
		[]curio.Bytes32{AuctionFinalizedEvent, auction.AuctionID, curio.BytesToBytes32(auction.HighestBidder.Bytes())},
		auction.HighestBid.Bytes())

	auctionsFinalizedCounter.Inc()
	log.Info("finalized auction", "id", auction.AuctionID.AbbrevString(), "winner", auction.HighestBidder,
		"amount", auction.HighestBid, "royalty", creatorAmount, "proceeds", sellerAmount)

	ret = auction.HighestBidder.Bytes()
	return
}
