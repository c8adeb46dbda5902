// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package market

import (
	setypes "github.com/curio-house/curio/script/types"
)

type MarketEnv struct {
	*setypes.ScriptEnv
	market *Market
}

func NewMarketEnv(market *Market, senv *setypes.ScriptEnv) *MarketEnv {
	return &MarketEnv{
		ScriptEnv: senv,
		market:    market,
	}
}

func (env *MarketEnv) GetMarket() *Market { return env.market }

// GetOutput packs collected return data, events and transfers for the engine.
func (env *MarketEnv) GetOutput() *setypes.ScriptEngineOutput {
	output := setypes.NewScriptEngineOutput(env.GetReturnData())
	output.BatchAddEvents(env.GetEvents())
	output.BatchAddTransfers(env.GetTransfers())
	return output
}
