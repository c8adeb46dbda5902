// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package royalty

import (
	"math/big"

	"github.com/curio-house/curio/curio"
)

// Split divides a sale price between the asset's creator and the seller.
// creatorAmount = salePrice * bps / 10000 with integer division rounding
// down; the residual dust stays on the seller side, it is never lost.
func Split(salePrice *big.Int, bps uint16) (creatorAmount, sellerAmount *big.Int) {
	creatorAmount = new(big.Int).Mul(salePrice, big.NewInt(int64(bps)))
	creatorAmount.Div(creatorAmount, new(big.Int).SetUint64(curio.BpsDenominator))
	sellerAmount = new(big.Int).Sub(salePrice, creatorAmount)
	return
}
