// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package escrow

import "github.com/ethereum/go-ethereum/common/math"

type Account struct {
	Balance *math.HexOrDecimal256 `json:"balance"`
	Pending *math.HexOrDecimal256 `json:"pending"`
}
