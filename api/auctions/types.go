// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auctions

import (
	"math/big"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/script/market"
	"github.com/pkg/errors"
)

type Auction struct {
	AuctionID     string `json:"auctionID"`
	AssetID       string `json:"assetID"`
	Seller        string `json:"seller"`
	ReservePrice  string `json:"reservePrice"`
	CreateTime    uint64 `json:"createTime"`
	Deadline      uint64 `json:"deadline"`
	HighestBid    string `json:"highestBid"`
	HighestBidder string `json:"highestBidder"`
	State         string `json:"state"`
	Settled       bool   `json:"settled"`
}

func convertAuction(a *market.Auction) *Auction {
	return &Auction{
		AuctionID:     a.AuctionID.String(),
		AssetID:       a.AssetID.String(),
		Seller:        a.Seller.String(),
		ReservePrice:  a.ReservePrice.String(),
		CreateTime:    a.CreateTime,
		Deadline:      a.Deadline,
		HighestBid:    a.HighestBid.String(),
		HighestBidder: a.HighestBidder.String(),
		State:         market.GetStateName(a.State),
		Settled:       a.Settled,
	}
}

type CreateRequest struct {
	Seller       string `json:"seller"`
	AssetID      string `json:"assetID"`
	ReservePrice string `json:"reservePrice"`
	Duration     uint64 `json:"duration"`
}

func (r *CreateRequest) parse() (curio.Address, *big.Int, *big.Int, error) {
	seller, err := curio.ParseAddress(r.Seller)
	if err != nil {
		return curio.Address{}, nil, nil, errors.WithMessage(err, "seller")
	}
	assetID, ok := new(big.Int).SetString(r.AssetID, 10)
	if !ok {
		return curio.Address{}, nil, nil, errors.New("assetID: bad number")
	}
	reserve, ok := new(big.Int).SetString(r.ReservePrice, 10)
	if !ok {
		return curio.Address{}, nil, nil, errors.New("reservePrice: bad number")
	}
	return seller, assetID, reserve, nil
}

type BidRequest struct {
	Bidder string `json:"bidder"`
	Amount string `json:"amount"`
}

func (r *BidRequest) parse() (curio.Address, *big.Int, error) {
	bidder, err := curio.ParseAddress(r.Bidder)
	if err != nil {
		return curio.Address{}, nil, errors.WithMessage(err, "bidder")
	}
	amount, ok := new(big.Int).SetString(r.Amount, 10)
	if !ok {
		return curio.Address{}, nil, errors.New("amount: bad number")
	}
	return bidder, amount, nil
}

type FinalizeRequest struct {
	Caller string `json:"caller"`
}
