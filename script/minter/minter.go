// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package minter

import (
	"log/slog"
	"math/big"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/registry"
	"github.com/curio-house/curio/royalty"
	setypes "github.com/curio-house/curio/script/types"
	"github.com/curio-house/curio/state"
)

var (
	MinterGlobInst *Minter
	log            = slog.Default().With("pkg", "minter")
)

// Minter applies the minting policy: fixed price, capped supply, royalty
// declaration. Assets it creates land in the registry owned by the caller.
type Minter struct {
	registry *registry.Registry
	logger   *slog.Logger
}

func GetMinterGlobInst() *Minter {
	return MinterGlobInst
}

func SetMinterGlobInst(inst *Minter) {
	MinterGlobInst = inst
}

func NewMinter(reg *registry.Registry) *Minter {
	minter := &Minter{
		registry: reg,
		logger:   slog.Default().With("pkg", "minter"),
	}
	SetMinterGlobInst(minter)
	return minter
}

func (m *Minter) Start() error {
	m.logger.Info("minter module started")
	return nil
}

// SupportsRoyaltyInterface reports the royalty declaration capability.
func (m *Minter) SupportsRoyaltyInterface() bool {
	return true
}

// RoyaltyInfo returns the royalty receiver and amount for a sale of the
// asset at the given price.
func (m *Minter) RoyaltyInfo(st *state.State, assetID *big.Int, salePrice *big.Int) (curio.Address, *big.Int, error) {
	asset, err := m.registry.GetAsset(st, assetID)
	if err != nil {
		return curio.Address{}, nil, err
	}
	amount, _ := royalty.Split(salePrice, asset.RoyaltyBps)
	return asset.Creator, amount, nil
}

// Handle routes a decoded mint payload to its opcode handler.
func (m *Minter) Handle(senv *setypes.ScriptEnv, payload []byte, to *curio.Address, gas uint64) (seOutput *setypes.ScriptEngineOutput, leftOverGas uint64, err error) {
	mb, err := DecodeFromBytes(payload)
	if err != nil {
		log.Error("decode mint body failed", "error", err)
		return nil, gas, err
	}

	env := NewMinterEnv(m, senv)
	log.Debug("received mint call", "body", mb.ToString())

	switch mb.Opcode {
	case OP_MINT:
		if env.GetTxCtx().Origin != mb.Minter {
			return nil, gas, errWrongOrigin
		}
		leftOverGas, err = mb.MintAsset(env, gas)
	default:
		log.Error("unknown Opcode", "Opcode", mb.Opcode)
		return nil, gas, errUnknownOpcode
	}

	seOutput = env.GetOutput()
	return
}
