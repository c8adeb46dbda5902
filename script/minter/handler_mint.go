// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package minter

import (
	"errors"
	"math/big"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/registry"
)

var errUnknownOpcode = errors.New("unknown mint opcode")

// MintAsset creates a new asset owned by the caller.
// Payment is captured in full; excess above the mint price is not refunded,
// the caller sends exact or accepts the overpayment.
func (mb *MintBody) MintAsset(env *MinterEnv, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
	}()
	minter := env.GetMinter()
	st := env.GetState()

	if gas < curio.ClauseGas {
		leftOverGas = 0
	} else {
		leftOverGas = gas - curio.ClauseGas
	}

	if mb.Payment.Cmp(curio.MaxUint256) > 0 {
		err = ErrOverflow
		return
	}
	if mb.Payment.Cmp(curio.MintPriceWei) < 0 {
		log.Info("payment below mint price", "payment", mb.Payment, "price", curio.MintPriceWei)
		err = ErrInsufficientPayment
		return
	}

	issued := minter.GetMintCounter(st)
	if issued >= curio.SupplyCap {
		log.Info("supply cap reached", "issued", issued, "cap", curio.SupplyCap)
		err = ErrSupplyExhausted
		return
	}

	// the full payment goes to the treasury, overpayment included
	if !st.SubBalance(mb.Minter, mb.Payment) {
		log.Info("not enough balance", "minter", mb.Minter, "payment", mb.Payment)
		err = ErrInsufficientFunds
		return
	}
	st.AddBalance(curio.TreasuryAddr, mb.Payment)
	env.AddTransfer(mb.Minter, curio.TreasuryAddr, mb.Payment, curio.NATIVE)

	issued = issued + 1
	assetID := new(big.Int).SetUint64(issued)

	asset := &registry.Asset{
		ID:          assetID,
		Creator:     mb.Minter,
		Owner:       mb.Minter,
		MetadataURI: mb.MetadataURI,
		RoyaltyBps:  curio.DefaultRoyaltyBps,
	}
	minter.registry.SetAsset(st, asset)
	minter.SetMintCounter(issued, st)

	env.AddEvent(curio.MinterAccountAddr,
		[]curio.Bytes32{MintedEvent, curio.BytesToBytes32(mb.Minter.Bytes()), curio.BytesToBytes32(assetID.Bytes())},
		[]byte(mb.MetadataURI))

	mintsCounter.Inc()
	supplyIssuedGauge.Set(float64(issued))
	log.Info("minted asset", "id", assetID, "minter", mb.Minter, "uri", mb.MetadataURI)

	ret = assetID.Bytes()
	return
}
