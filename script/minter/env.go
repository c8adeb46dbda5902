// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package minter

import (
	setypes "github.com/curio-house/curio/script/types"
)

type MinterEnv struct {
	*setypes.ScriptEnv
	minter *Minter
}

func NewMinterEnv(minter *Minter, senv *setypes.ScriptEnv) *MinterEnv {
	return &MinterEnv{
		ScriptEnv: senv,
		minter:    minter,
	}
}

func (env *MinterEnv) GetMinter() *Minter { return env.minter }

// GetOutput packs collected return data, events and transfers for the engine.
func (env *MinterEnv) GetOutput() *setypes.ScriptEngineOutput {
	output := setypes.NewScriptEngineOutput(env.GetReturnData())
	output.BatchAddEvents(env.GetEvents())
	output.BatchAddTransfers(env.GetTransfers())
	return output
}
