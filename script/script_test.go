// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script_test

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/registry"
	"github.com/curio-house/curio/script"
	"github.com/curio-house/curio/script/minter"
	setypes "github.com/curio-house/curio/script/types"
	"github.com/curio-house/curio/state"
	"github.com/curio-house/curio/xenv"
	"github.com/stretchr/testify/assert"
)

func TestEncodeScriptData(t *testing.T) {
	body := &minter.MintBody{
		Opcode:      minter.OP_MINT,
		Minter:      curio.BytesToAddress([]byte("alice")),
		MetadataURI: "ipfs://asset-one",
		Payment:     curio.MintPriceWei,
	}
	data, err := script.EncodeScriptData(body)
	assert.Nil(t, err)
	assert.True(t, bytes.HasPrefix(data, script.ScriptPattern[:]))

	s, err := script.ScriptDecodeFromBytes(data[len(script.ScriptPattern):])
	assert.Nil(t, err)
	assert.Equal(t, script.MINTER_MODULE_ID, s.Header.GetModID())

	decoded, err := minter.DecodeFromBytes(s.Payload)
	assert.Nil(t, err)
	assert.Equal(t, body.Minter, decoded.Minter)
	assert.Equal(t, body.MetadataURI, decoded.MetadataURI)
	assert.Equal(t, 0, body.Payment.Cmp(decoded.Payment))
}

func TestEncodeScriptDataUnknownBody(t *testing.T) {
	_, err := script.EncodeScriptData(struct{}{})
	assert.NotNil(t, err)
}

func TestHandleScriptData(t *testing.T) {
	st := state.New()
	alice := curio.BytesToAddress([]byte("alice"))
	st.SetBalance(alice, new(big.Int).Set(curio.MintPriceWei))

	se := script.NewScriptEngine(registry.New())
	senv := setypes.NewScriptEnv(st,
		&xenv.BlockContext{Number: 1, Time: 1000},
		&xenv.TransactionContext{Origin: alice},
		&curio.ScriptEngineAddr)

	data, err := script.EncodeScriptData(&minter.MintBody{
		Opcode:  minter.OP_MINT,
		Minter:  alice,
		Payment: curio.MintPriceWei,
	})
	assert.Nil(t, err)

	out, leftOverGas, err := se.HandleScriptData(senv, data, &curio.ScriptEngineAddr, curio.ExecutionGasLimit)
	assert.Nil(t, err)
	assert.True(t, leftOverGas < curio.ExecutionGasLimit)
	assert.Equal(t, big.NewInt(1), new(big.Int).SetBytes(out.GetData()))
}

func TestHandleScriptDataBadPattern(t *testing.T) {
	se := script.NewScriptEngine(registry.New())
	senv := setypes.NewScriptEnv(state.New(),
		&xenv.BlockContext{},
		&xenv.TransactionContext{},
		&curio.ScriptEngineAddr)

	_, _, err := se.HandleScriptData(senv, []byte{0xde, 0xad, 0xbe, 0xef, 0x01}, &curio.ScriptEngineAddr, curio.ExecutionGasLimit)
	assert.NotNil(t, err)
}

func TestHandleScriptDataUnknownModule(t *testing.T) {
	se := script.NewScriptEngine(registry.New())
	senv := setypes.NewScriptEnv(state.New(),
		&xenv.BlockContext{},
		&xenv.TransactionContext{},
		&curio.ScriptEngineAddr)

	raw := script.ScriptEncodeBytes(&script.Script{
		Header:  script.ScriptHeader{Version: 0, ModID: 9999},
		Payload: []byte{0x01},
	})
	data := append(script.ScriptPattern[:], raw...)

	_, _, err := se.HandleScriptData(senv, data, &curio.ScriptEngineAddr, curio.ExecutionGasLimit)
	assert.NotNil(t, err)
}
