// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package market

import (
	"log/slog"
	"math/big"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/script/escrow"
	setypes "github.com/curio-house/curio/script/types"
	"github.com/curio-house/curio/state"
)

var (
	MarketGlobInst *Market
	log            = slog.Default().With("pkg", "market")
)

// AssetRegistry the ownership capability the market drives assets through.
type AssetRegistry interface {
	OwnerOf(st *state.State, id *big.Int) (curio.Address, error)
	CreatorOf(st *state.State, id *big.Int) (curio.Address, error)
	RoyaltyOf(st *state.State, id *big.Int) (uint16, error)
	TransferOwnership(st *state.State, id *big.Int, from, to curio.Address) error
}

// Market owns the auction lifecycle state machine: creation, bidding,
// finalization. Custodied assets and locked bids live under the market
// account; everything owed to somebody is pushed into the escrow ledger and
// pulled from there.
type Market struct {
	registry AssetRegistry
	escrow   *escrow.Escrow
	logger   *slog.Logger
}

func GetMarketGlobInst() *Market {
	return MarketGlobInst
}

func SetMarketGlobInst(inst *Market) {
	MarketGlobInst = inst
}

func NewMarket(reg AssetRegistry, esc *escrow.Escrow) *Market {
	market := &Market{
		registry: reg,
		escrow:   esc,
		logger:   slog.Default().With("pkg", "market"),
	}
	SetMarketGlobInst(market)
	return market
}

func (m *Market) Start() error {
	m.logger.Info("market module started")
	return nil
}

// Escrow exposes the escrow ledger behind the engine boundary.
func (m *Market) Escrow() *escrow.Escrow {
	return m.escrow
}

// Handle routes a decoded market payload to its opcode handler.
func (m *Market) Handle(senv *setypes.ScriptEnv, payload []byte, to *curio.Address, gas uint64) (seOutput *setypes.ScriptEngineOutput, leftOverGas uint64, err error) {
	mb, err := DecodeFromBytes(payload)
	if err != nil {
		log.Error("decode market body failed", "error", err)
		return nil, gas, err
	}

	env := NewMarketEnv(m, senv)
	log.Debug("received market call", "body", mb.ToString())
	log.Info("entering market handler " + mb.GetOpName(mb.Opcode))

	switch mb.Opcode {
	case OP_CREATE:
		leftOverGas, err = mb.CreateAuction(env, gas)

	case OP_BID:
		if env.GetTxCtx().Origin != mb.Bidder {
			return nil, gas, errWrongOrigin
		}
		leftOverGas, err = mb.HandleBid(env, gas)

	case OP_FINALIZE:
		// settlement is permissionless, anyone may trigger it
		leftOverGas, err = mb.FinalizeAuction(env, gas)

	case OP_WITHDRAW:
		leftOverGas, err = mb.WithdrawRefund(env, gas)

	default:
		log.Error("unknown Opcode", "Opcode", mb.Opcode)
		return nil, gas, errUnknownOpcode
	}

	seOutput = env.GetOutput()
	return
}
