// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package minter

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/curio-house/curio/curio"
	"github.com/ethereum/go-ethereum/rlp"
)

// MintBody payload of a mint call.
type MintBody struct {
	Opcode      uint32
	Version     uint32
	Minter      curio.Address
	MetadataURI string
	Payment     *big.Int
	Timestamp   uint64
	Nonce       uint64
}

func (mb *MintBody) ToString() string {
	return fmt.Sprintf("MintBody: Opcode=%v, Version=%v, Minter=%v, MetadataURI=%v, Payment=%v, Timestamp=%v, Nonce=%v",
		mb.Opcode, mb.Version, mb.Minter.String(), mb.MetadataURI, mb.Payment.String(), mb.Timestamp, mb.Nonce)
}

func (mb *MintBody) String() string {
	return mb.ToString()
}

func (mb *MintBody) GetOpName(op uint32) string {
	return GetOpName(op)
}

var (
	ErrInsufficientPayment = errors.New("payment below mint price")
	ErrSupplyExhausted     = errors.New("supply cap reached")
	ErrInsufficientFunds   = errors.New("not enough balance to cover payment")
	ErrOverflow            = errors.New("amount overflows")

	errWrongOrigin = errors.New("minter address is not the same from transaction")
)

func EncodeBytes(mb *MintBody) []byte {
	mintBytes, err := rlp.EncodeToBytes(mb)
	if err != nil {
		log.Error("rlp encode failed", "error", err)
		return []byte{}
	}
	return mintBytes
}

func DecodeFromBytes(bytes []byte) (*MintBody, error) {
	mb := MintBody{}
	err := rlp.DecodeBytes(bytes, &mb)
	return &mb, err
}
