// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package minter_test

import (
	"math/big"
	"testing"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/registry"
	"github.com/curio-house/curio/script/minter"
	setypes "github.com/curio-house/curio/script/types"
	"github.com/curio-house/curio/state"
	"github.com/curio-house/curio/xenv"
	"github.com/stretchr/testify/assert"
)

var minterAddr = curio.BytesToAddress([]byte("alice"))

func newEnv(st *state.State, origin curio.Address) *setypes.ScriptEnv {
	return setypes.NewScriptEnv(st,
		&xenv.BlockContext{Number: 1, Time: 1000},
		&xenv.TransactionContext{Origin: origin},
		&curio.ScriptEngineAddr)
}

func mint(t *testing.T, m *minter.Minter, senv *setypes.ScriptEnv, body *minter.MintBody) (*setypes.ScriptEngineOutput, error) {
	payload := minter.EncodeBytes(body)
	assert.NotEmpty(t, payload)
	out, _, err := m.Handle(senv, payload, &curio.ScriptEngineAddr, curio.ExecutionGasLimit)
	return out, err
}

func TestMint(t *testing.T) {
	st := state.New()
	reg := registry.New()
	m := minter.NewMinter(reg)
	st.SetBalance(minterAddr, new(big.Int).Mul(curio.MintPriceWei, big.NewInt(10)))

	out, err := mint(t, m, newEnv(st, minterAddr), &minter.MintBody{
		Opcode:      minter.OP_MINT,
		Minter:      minterAddr,
		MetadataURI: "ipfs://asset-one",
		Payment:     curio.MintPriceWei,
	})
	assert.Nil(t, err)
	assetID := new(big.Int).SetBytes(out.GetData())
	assert.Equal(t, big.NewInt(1), assetID)

	asset, err := reg.GetAsset(st, assetID)
	assert.Nil(t, err)
	assert.Equal(t, minterAddr, asset.Creator)
	assert.Equal(t, minterAddr, asset.Owner)
	assert.Equal(t, "ipfs://asset-one", asset.MetadataURI)
	assert.Equal(t, curio.DefaultRoyaltyBps, asset.RoyaltyBps)

	assert.Equal(t, uint64(1), m.GetMintCounter(st))
	assert.Equal(t, curio.MintPriceWei, st.GetBalance(curio.TreasuryAddr))

	// right topic, right subject
	events := out.GetEvents()
	assert.Equal(t, 1, len(events))
	assert.Equal(t, minter.MintedEvent, events[0].Topics[0])
}

func TestMintSequentialIDs(t *testing.T) {
	st := state.New()
	m := minter.NewMinter(registry.New())
	st.SetBalance(minterAddr, new(big.Int).Mul(curio.MintPriceWei, big.NewInt(10)))

	for want := int64(1); want <= 3; want++ {
		out, err := mint(t, m, newEnv(st, minterAddr), &minter.MintBody{
			Opcode:  minter.OP_MINT,
			Minter:  minterAddr,
			Payment: curio.MintPriceWei,
		})
		assert.Nil(t, err)
		assert.Equal(t, big.NewInt(want), new(big.Int).SetBytes(out.GetData()))
	}
}

func TestMintInsufficientPayment(t *testing.T) {
	st := state.New()
	m := minter.NewMinter(registry.New())
	st.SetBalance(minterAddr, new(big.Int).Set(curio.MintPriceWei))

	under := new(big.Int).Sub(curio.MintPriceWei, big.NewInt(1))
	_, err := mint(t, m, newEnv(st, minterAddr), &minter.MintBody{
		Opcode:  minter.OP_MINT,
		Minter:  minterAddr,
		Payment: under,
	})
	assert.Equal(t, minter.ErrInsufficientPayment, err)
	assert.Equal(t, uint64(0), m.GetMintCounter(st))
}

func TestMintOverflowingPayment(t *testing.T) {
	st := state.New()
	m := minter.NewMinter(registry.New())
	st.SetBalance(minterAddr, new(big.Int).Set(curio.MintPriceWei))

	over := new(big.Int).Add(curio.MaxUint256, big.NewInt(1))
	_, err := mint(t, m, newEnv(st, minterAddr), &minter.MintBody{
		Opcode:  minter.OP_MINT,
		Minter:  minterAddr,
		Payment: over,
	})
	assert.Equal(t, minter.ErrOverflow, err)
	assert.Equal(t, uint64(0), m.GetMintCounter(st))
	assert.Equal(t, curio.MintPriceWei, st.GetBalance(minterAddr))
}

func TestMintOverpaymentCaptured(t *testing.T) {
	st := state.New()
	m := minter.NewMinter(registry.New())
	over := new(big.Int).Mul(curio.MintPriceWei, big.NewInt(3))
	st.SetBalance(minterAddr, over)

	_, err := mint(t, m, newEnv(st, minterAddr), &minter.MintBody{
		Opcode:  minter.OP_MINT,
		Minter:  minterAddr,
		Payment: over,
	})
	assert.Nil(t, err)
	// no refund of the excess
	assert.Equal(t, big.NewInt(0), st.GetBalance(minterAddr))
	assert.Equal(t, over, st.GetBalance(curio.TreasuryAddr))
}

func TestMintInsufficientFunds(t *testing.T) {
	st := state.New()
	m := minter.NewMinter(registry.New())

	_, err := mint(t, m, newEnv(st, minterAddr), &minter.MintBody{
		Opcode:  minter.OP_MINT,
		Minter:  minterAddr,
		Payment: curio.MintPriceWei,
	})
	assert.Equal(t, minter.ErrInsufficientFunds, err)
	assert.Equal(t, uint64(0), m.GetMintCounter(st))
	assert.Equal(t, big.NewInt(0), st.GetBalance(curio.TreasuryAddr))
}

func TestMintSupplyExhausted(t *testing.T) {
	st := state.New()
	m := minter.NewMinter(registry.New())
	st.SetBalance(minterAddr, new(big.Int).Set(curio.MintPriceWei))

	m.SetMintCounter(curio.SupplyCap, st)

	_, err := mint(t, m, newEnv(st, minterAddr), &minter.MintBody{
		Opcode:  minter.OP_MINT,
		Minter:  minterAddr,
		Payment: curio.MintPriceWei,
	})
	assert.Equal(t, minter.ErrSupplyExhausted, err)
	assert.Equal(t, curio.SupplyCap, m.GetMintCounter(st))
}

func TestMintWrongOrigin(t *testing.T) {
	st := state.New()
	m := minter.NewMinter(registry.New())
	st.SetBalance(minterAddr, new(big.Int).Set(curio.MintPriceWei))

	other := curio.BytesToAddress([]byte("mallory"))
	_, err := mint(t, m, newEnv(st, other), &minter.MintBody{
		Opcode:  minter.OP_MINT,
		Minter:  minterAddr,
		Payment: curio.MintPriceWei,
	})
	assert.NotNil(t, err)
	assert.Equal(t, uint64(0), m.GetMintCounter(st))
}

func TestRoyaltyInfo(t *testing.T) {
	st := state.New()
	reg := registry.New()
	m := minter.NewMinter(reg)
	st.SetBalance(minterAddr, new(big.Int).Set(curio.MintPriceWei))

	out, err := mint(t, m, newEnv(st, minterAddr), &minter.MintBody{
		Opcode:  minter.OP_MINT,
		Minter:  minterAddr,
		Payment: curio.MintPriceWei,
	})
	assert.Nil(t, err)
	assetID := new(big.Int).SetBytes(out.GetData())

	assert.True(t, m.SupportsRoyaltyInterface())

	receiver, amount, err := m.RoyaltyInfo(st, assetID, big.NewInt(10000))
	assert.Nil(t, err)
	assert.Equal(t, minterAddr, receiver)
	assert.Equal(t, big.NewInt(500), amount)

	_, _, err = m.RoyaltyInfo(st, big.NewInt(999), big.NewInt(10000))
	assert.Equal(t, registry.ErrAssetNotFound, err)
}
