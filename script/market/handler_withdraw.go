// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package market

import (
	"github.com/curio-house/curio/curio"
)

// WithdrawRefund releases whatever the caller is owed: outbid refunds,
// royalty credits and seller proceeds all pull from the same escrow entry.
func (mb *MarketBody) WithdrawRefund(env *MarketEnv, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
	}()
	market := env.GetMarket()

	if gas < curio.ClauseGas {
		leftOverGas = 0
	} else {
		leftOverGas = gas - curio.ClauseGas
	}

	amount, err := market.escrow.Withdraw(env.ScriptEnv, env.GetTxCtx().Origin)
	if err != nil {
		return
	}

	ret = amount.Bytes()
	return
}
