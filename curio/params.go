// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package curio

import (
	"math/big"

	"github.com/ethereum/go-ethereum/params"
)

// Constants of the ledger.
const (
	TxGas     uint64 = 5000
	ClauseGas uint64 = params.TxGas - TxGas

	// ExecutionGasLimit gas budget handed to each serialized call.
	ExecutionGasLimit uint64 = 1000 * 1000

	// SupplyCap hard cap of mintable assets, never raised.
	SupplyCap uint64 = 10000

	// DefaultRoyaltyBps royalty declared on every minted asset, in basis points.
	DefaultRoyaltyBps uint16 = 500
	BpsDenominator    uint64 = 10000

	// MaxAuctionDuration sanity ceiling for auction duration, in seconds.
	MaxAuctionDuration uint64 = 30 * 24 * 3600
)

// Token kinds carried on transfer logs.
const (
	NATIVE byte = byte(0)
)

var (
	// MintPriceWei fixed mint price, 0.01 native unit.
	MintPriceWei = big.NewInt(1e16)

	// MaxUint256 upper bound for every amount on the ledger; anything above is rejected, never wrapped.
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

// Module account addresses. Funds and assets in custody live under these.
var (
	ScriptEngineAddr  = BytesToAddress([]byte("curio-script-engine"))
	MinterAccountAddr = BytesToAddress([]byte("curio-minter-account"))
	MarketAccountAddr = BytesToAddress([]byte("curio-market-account"))
	EscrowAccountAddr = BytesToAddress([]byte("curio-escrow-account"))

	// TreasuryAddr sink of mint proceeds, overpayment included.
	TreasuryAddr = BytesToAddress([]byte("curio-treasury"))
)
