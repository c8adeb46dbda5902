// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

import (
	"errors"
	"fmt"

	"github.com/curio-house/curio/script/market"
	"github.com/curio-house/curio/script/minter"
	"github.com/ethereum/go-ethereum/rlp"
)

var (
	ScriptPattern = [4]byte{0xcc, 0x10, 0xbe, 0xef}
)

type Script struct {
	Header  ScriptHeader
	Payload []byte
}

type ScriptHeader struct {
	Version uint32
	ModID   uint32
}

// Version returns the version
func (sh *ScriptHeader) GetVersion() uint32 { return sh.Version }
func (sh *ScriptHeader) GetModID() uint32   { return sh.ModID }
func (sh *ScriptHeader) ToString() string {
	return fmt.Sprintf("ScriptHeader:::  Version: %v, ModID: %v", sh.Version, sh.ModID)
}

func ScriptEncodeBytes(script *Script) []byte {
	scriptBytes, err := rlp.EncodeToBytes(script)
	if err != nil {
		fmt.Printf("rlp encode failed, %s\n", err.Error())
		return []byte{}
	}
	return scriptBytes
}

func ScriptDecodeFromBytes(bytes []byte) (*Script, error) {
	script := Script{}
	err := rlp.DecodeBytes(bytes, &script)
	return &script, err
}

// EncodeScriptData wraps a module body into the pattern-prefixed envelope
// the engine accepts.
func EncodeScriptData(body interface{}) ([]byte, error) {
	var payload []byte
	var err error
	modID := uint32(999)

	switch b := body.(type) {
	case minter.MintBody:
		modID = MINTER_MODULE_ID
		payload, err = rlp.EncodeToBytes(&b)
	case *minter.MintBody:
		modID = MINTER_MODULE_ID
		payload, err = rlp.EncodeToBytes(b)
	case market.MarketBody:
		modID = MARKET_MODULE_ID
		payload, err = rlp.EncodeToBytes(&b)
	case *market.MarketBody:
		modID = MARKET_MODULE_ID
		payload, err = rlp.EncodeToBytes(b)
	default:
		return nil, errors.New("unknown script body type")
	}
	if err != nil {
		return nil, err
	}

	script := &Script{
		Header: ScriptHeader{
			Version: 0,
			ModID:   modID,
		},
		Payload: payload,
	}
	data, err := rlp.EncodeToBytes(script)
	if err != nil {
		return nil, err
	}
	return append(ScriptPattern[:], data...), nil
}
