// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package market

import (
	"time"

	"github.com/curio-house/curio/curio"
)

// HandleBid accepts a strictly higher bid on an active auction. The previous
// highest bidder, if any, is made whole through the escrow ledger; funds are
// never pushed back inline.
func (mb *MarketBody) HandleBid(env *MarketEnv, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	start := time.Now()
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
		log.Debug("bid completed", "elapsed", curio.PrettyDuration(time.Since(start)))
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
	if !auction.IsActive() || env.Now() >= auction.Deadline {
		log.Info("auction not active", "id", mb.AuctionID.AbbrevString(), "state", GetStateName(auction.State), "deadline", auction.Deadline, "now", env.Now())
		err = ErrAuctionNotActive
		return
	}

	if mb.Amount.Cmp(curio.MaxUint256) > 0 {
		err = ErrOverflow
		return
	}
	// strict increase; the reserve price sits in HighestBid as the floor
	// until the first bid lands
	if mb.Amount.Cmp(auction.HighestBid) <= 0 {
		log.Info("bid too low", "amount", mb.Amount, "highestBid", auction.HighestBid)
		err = ErrBidTooLow
		return
	}

	// lock the new bid under market custody
	if !st.SubBalance(mb.Bidder, mb.Amount) {
		log.Info("not enough balance", "bidder", mb.Bidder, "amount", mb.Amount, "balance", st.GetBalance(mb.Bidder))
		err = ErrInsufficientFunds
		return
	}
	st.AddBalance(curio.MarketAccountAddr, mb.Amount)
	env.AddTransfer(mb.Bidder, curio.MarketAccountAddr, mb.Amount, curio.NATIVE)

	// refund-by-outbid: the previous bid becomes withdrawable immediately
	if auction.HasBidder() {
		if err = market.escrow.Credit(env.ScriptEnv, curio.MarketAccountAddr, auction.HighestBidder, auction.HighestBid); err != nil {
			log.Error("could not credit outbid refund", "bidder", auction.HighestBidder, "err", err)
			return
		}
	}

	auction.HighestBid = mb.Amount
	auction.HighestBidder = mb.Bidder
	market.SetAuction(auction, st)

	env.AddEvent(curio.MarketAccountAddr,
		[]curio.Bytes32{BidPlacedEvent, auction.AuctionID, curio.BytesToBytes32(mb.Bidder.Bytes())},
		mb.Amount.Bytes())

	bidsCounter.Inc()
	log.Info("bid placed", "id", auction.AuctionID.AbbrevString(), "bidder", mb.Bidder, "amount", mb.Amount)
	return
}
