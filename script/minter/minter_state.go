// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package minter

import (
	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/state"
	"github.com/ethereum/go-ethereum/rlp"
)

// GetMintCounter loads the count of assets issued so far.
// The counter only ever grows, one per successful mint.
func (m *Minter) GetMintCounter(st *state.State) (issued uint64) {
	st.DecodeStorage(curio.MinterAccountAddr, MintCounterKey, func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, &issued)
	})
	return
}

func (m *Minter) SetMintCounter(issued uint64, st *state.State) {
	st.EncodeStorage(curio.MinterAccountAddr, MintCounterKey, func() ([]byte, error) {
		return rlp.EncodeToBytes(issued)
	})
}
