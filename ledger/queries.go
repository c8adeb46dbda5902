// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/registry"
	"github.com/curio-house/curio/script/market"
)

// GetAuction returns the auction record, or nil when no such auction exists.
func (l *Ledger) GetAuction(id curio.Bytes32) *market.Auction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.se.Market().GetAuction(l.state, id)
}

// ListAuctions returns every auction ever created, in creation order.
func (l *Ledger) ListAuctions() []*market.Auction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m := l.se.Market()
	ids := m.GetAuctionIDs(l.state)
	auctions := make([]*market.Auction, 0, len(ids))
	for _, id := range ids {
		if a := m.GetAuction(l.state, id); a != nil {
			auctions = append(auctions, a)
		}
	}
	return auctions
}

// GetAsset returns the asset record, or nil when no such asset exists.
func (l *Ledger) GetAsset(id *big.Int) *registry.Asset {
	l.mu.RLock()
	defer l.mu.RUnlock()
	asset, err := l.se.AssetRegistry().GetAsset(l.state, id)
	if err != nil {
		return nil
	}
	return asset
}

// RoyaltyInfo reports who is owed royalty for a sale of the asset at the
// given price, and how much.
func (l *Ledger) RoyaltyInfo(assetID, salePrice *big.Int) (curio.Address, *big.Int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.se.Minter().RoyaltyInfo(l.state, assetID, salePrice)
}

// IssuedSupply returns how many assets have been minted so far.
func (l *Ledger) IssuedSupply() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.se.Minter().GetMintCounter(l.state)
}

// PendingWithdrawal returns the amount account can currently withdraw.
func (l *Ledger) PendingWithdrawal(account curio.Address) *big.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.se.Market().Escrow().PendingOf(l.state, account)
}

// Balance returns account's native balance.
func (l *Ledger) Balance(account curio.Address) *big.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.GetBalance(account)
}
