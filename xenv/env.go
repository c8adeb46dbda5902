// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"fmt"

	"github.com/curio-house/curio/curio"
)

// BlockContext ambient context of the serialized ledger at call time.
type BlockContext struct {
	Number uint64
	Time   uint64
}

// TransactionContext context of one state-mutating call.
type TransactionContext struct {
	ID     curio.Bytes32
	Origin curio.Address
	Nonce  uint64
}

func (ctx *TransactionContext) String() string {
	return fmt.Sprintf("txCtx{ID:%s Origin:%s Nonce:%d}", ctx.ID.String(), ctx.Origin.String(), ctx.Nonce)
}
