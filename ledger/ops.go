// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/script"
	"github.com/curio-house/curio/script/market"
	"github.com/curio-house/curio/script/minter"
)

// Mint issues a new asset to origin, paying the fixed mint price out of
// origin's balance. Returns the new asset id.
func (l *Ledger) Mint(origin curio.Address, metadataURI string, payment *big.Int) (*big.Int, error) {
	body := &minter.MintBody{
		Opcode:      minter.OP_MINT,
		Version:     0,
		Minter:      origin,
		MetadataURI: metadataURI,
		Payment:     payment,
		Timestamp:   l.Now(),
	}
	data, err := script.EncodeScriptData(body)
	if err != nil {
		return nil, err
	}
	out, err := l.Execute(data, origin)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(out.GetData()), nil
}

// CreateAuction lists an asset owned by origin. Returns the auction id.
func (l *Ledger) CreateAuction(origin curio.Address, assetID, reservePrice *big.Int, duration uint64) (curio.Bytes32, error) {
	body := &market.MarketBody{
		Opcode:       market.OP_CREATE,
		Version:      0,
		AssetID:      assetID,
		Bidder:       origin,
		ReservePrice: reservePrice,
		Duration:     duration,
		Timestamp:    l.Now(),
	}
	data, err := script.EncodeScriptData(body)
	if err != nil {
		return curio.Bytes32{}, err
	}
	out, err := l.Execute(data, origin)
	if err != nil {
		return curio.Bytes32{}, err
	}
	return curio.BytesToBytes32(out.GetData()), nil
}

// PlaceBid locks origin's bid on an active auction, releasing any previously
// leading bid into its bidder's pending withdrawals.
func (l *Ledger) PlaceBid(origin curio.Address, auctionID curio.Bytes32, amount *big.Int) error {
	body := &market.MarketBody{
		Opcode:    market.OP_BID,
		Version:   0,
		AuctionID: auctionID,
		Bidder:    origin,
		Amount:    amount,
		Timestamp: l.Now(),
	}
	data, err := script.EncodeScriptData(body)
	if err != nil {
		return err
	}
	_, err = l.Execute(data, origin)
	return err
}

// Finalize settles an auction past its deadline. Anyone may call it.
// Returns the winner, or the zero address when the auction closed with no bids.
func (l *Ledger) Finalize(origin curio.Address, auctionID curio.Bytes32) (curio.Address, error) {
	body := &market.MarketBody{
		Opcode:    market.OP_FINALIZE,
		Version:   0,
		AuctionID: auctionID,
		Timestamp: l.Now(),
	}
	data, err := script.EncodeScriptData(body)
	if err != nil {
		return curio.Address{}, err
	}
	out, err := l.Execute(data, origin)
	if err != nil {
		return curio.Address{}, err
	}
	return curio.BytesToAddress(out.GetData()), nil
}

// Withdraw pays out origin's pending withdrawals. Returns the amount paid.
func (l *Ledger) Withdraw(origin curio.Address) (*big.Int, error) {
	body := &market.MarketBody{
		Opcode:    market.OP_WITHDRAW,
		Version:   0,
		Bidder:    origin,
		Timestamp: l.Now(),
	}
	data, err := script.EncodeScriptData(body)
	if err != nil {
		return nil, err
	}
	out, err := l.Execute(data, origin)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(out.GetData()), nil
}
