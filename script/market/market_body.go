// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package market

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/curio-house/curio/curio"
	"github.com/ethereum/go-ethereum/rlp"
)

// MarketBody payload of a market call. Fields not used by an opcode are left
// at their zero value.
type MarketBody struct {
	Opcode       uint32
	Version      uint32
	AuctionID    curio.Bytes32
	AssetID      *big.Int
	Bidder       curio.Address
	Amount       *big.Int
	ReservePrice *big.Int
	Duration     uint64
	Timestamp    uint64
	Nonce        uint64
}

func (mb *MarketBody) ToString() string {
	return fmt.Sprintf("MarketBody: Opcode=%v, Version=%v, AuctionID=%v, AssetID=%v, Bidder=%v, Amount=%v, ReservePrice=%v, Duration=%v, Timestamp=%v, Nonce=%v",
		mb.Opcode, mb.Version, mb.AuctionID.AbbrevString(), mb.AssetID, mb.Bidder.String(), mb.Amount, mb.ReservePrice, mb.Duration, mb.Timestamp, mb.Nonce)
}

func (mb *MarketBody) String() string {
	return mb.ToString()
}

func (mb *MarketBody) GetOpName(op uint32) string {
	return GetOpName(op)
}

var (
	ErrAuctionNotFound    = errors.New("auction not found")
	ErrAuctionNotActive   = errors.New("auction not active")
	ErrAuctionStillActive = errors.New("auction still active")
	ErrAlreadySettled     = errors.New("auction already settled")
	ErrBidTooLow          = errors.New("bid not above current highest bid")
	ErrNotOwner           = errors.New("not the asset owner")
	ErrInvalidDuration    = errors.New("invalid auction duration")
	ErrInsufficientFunds  = errors.New("not enough balance to cover bid")
	ErrOverflow           = errors.New("amount overflows")

	errAuctionExists = errors.New("auction with the same id exists")
	errWrongOrigin   = errors.New("bidder address is not the same from transaction")
	errUnknownOpcode = errors.New("unknown market opcode")
)

func EncodeBytes(mb *MarketBody) []byte {
	marketBytes, err := rlp.EncodeToBytes(mb)
	if err != nil {
		log.Error("rlp encode failed", "error", err)
		return []byte{}
	}
	return marketBytes
}

func DecodeFromBytes(bytes []byte) (*MarketBody, error) {
	mb := MarketBody{}
	err := rlp.DecodeBytes(bytes, &mb)
	return &mb, err
}
