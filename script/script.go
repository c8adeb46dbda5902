// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/registry"
	"github.com/curio-house/curio/script/market"
	"github.com/curio-house/curio/script/minter"
	setypes "github.com/curio-house/curio/script/types"
)

var (
	ScriptGlobInst *ScriptEngine
)

// ScriptEngine routes pattern-prefixed call payloads to the registered
// modules: minter and market.
type ScriptEngine struct {
	assetRegistry *registry.Registry
	logger        *slog.Logger
	modReg        Registry

	minter *minter.Minter
	market *market.Market
}

// Glob Instance
func GetScriptGlobInst() *ScriptEngine {
	return ScriptGlobInst
}

func SetScriptGlobInst(inst *ScriptEngine) {
	ScriptGlobInst = inst
}

func NewScriptEngine(reg *registry.Registry) *ScriptEngine {
	se := &ScriptEngine{
		assetRegistry: reg,
		logger:        slog.Default().With("pkg", "se"),
	}
	SetScriptGlobInst(se)

	// start all sub modules
	se.StartAllModules()
	return se
}

func (se *ScriptEngine) StartAllModules() {
	se.minter = ModuleMinterInit(se)
	se.market = ModuleMarketInit(se)
}

// Minter returns the minter module instance.
func (se *ScriptEngine) Minter() *minter.Minter { return se.minter }

// AssetRegistry returns the registry shared by all modules.
func (se *ScriptEngine) AssetRegistry() *registry.Registry { return se.assetRegistry }

// Market returns the market module instance.
func (se *ScriptEngine) Market() *market.Market { return se.market }

func (se *ScriptEngine) HandleScriptData(senv *setypes.ScriptEnv, data []byte, to *curio.Address, gas uint64) (seOutput *setypes.ScriptEngineOutput, leftOverGas uint64, err error) {
	if len(data) < len(ScriptPattern) || !bytes.Equal(data[:len(ScriptPattern)], ScriptPattern[:]) {
		err := fmt.Errorf("pattern mismatch, pattern = %v", hex.EncodeToString(data[:min(len(data), len(ScriptPattern))]))
		se.logger.Error("invalid script data", "err", err)
		return nil, gas, err
	}
	script, err := ScriptDecodeFromBytes(data[len(ScriptPattern):])
	if err != nil {
		se.logger.Error("decode script message failed", "err", err)
		return nil, gas, err
	}

	header := script.Header

	mod, find := se.modReg.Find(header.GetModID())
	if !find {
		err := fmt.Errorf("could not address module %v", header.GetModID())
		se.logger.Error("module not found", "err", err)
		return nil, gas, err
	}

	// module handler
	seOutput, leftOverGas, err = mod.modHandler(senv, script.Payload, to, gas)
	return
}
