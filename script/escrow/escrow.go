// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package escrow

import (
	"errors"
	"log/slog"
	"math/big"

	"github.com/curio-house/curio/curio"
	setypes "github.com/curio-house/curio/script/types"
	"github.com/curio-house/curio/state"
	"github.com/ethereum/go-ethereum/rlp"
)

var (
	ErrNothingToWithdraw = errors.New("nothing to withdraw")
	ErrOverflow          = errors.New("amount overflows")

	errNoBackingFunds = errors.New("escrow credit without backing funds")

	// WithdrawnEvent topic0 of the Withdrawn event log.
	WithdrawnEvent = curio.Blake2b([]byte("Withdrawn"))
)

// Escrow tracks funds owed to each account, pending withdrawal. Credits are
// additive and internal; withdrawal is the only operation that moves value
// out, and it zeroes the owed balance before doing so.
type Escrow struct {
	logger *slog.Logger
}

func New() *Escrow {
	return &Escrow{
		logger: slog.Default().With("pkg", "escrow"),
	}
}

func escrowKey(account curio.Address) curio.Bytes32 {
	return curio.Blake2b([]byte("escrow-entry"), account.Bytes())
}

// PendingOf returns the amount owed to the account.
func (e *Escrow) PendingOf(st *state.State, account curio.Address) *big.Int {
	pending := big.NewInt(0)
	st.DecodeStorage(curio.EscrowAccountAddr, escrowKey(account), func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, pending)
	})
	return pending
}

func (e *Escrow) setPending(st *state.State, account curio.Address, amount *big.Int) {
	key := escrowKey(account)
	if amount.Sign() == 0 {
		st.SetStorage(curio.EscrowAccountAddr, key, nil)
		return
	}
	st.EncodeStorage(curio.EscrowAccountAddr, key, func() ([]byte, error) {
		return rlp.EncodeToBytes(amount)
	})
}

// Credit moves amount out of the from module account into escrow custody and
// adds it to what the account can withdraw. Callable only by engine modules;
// it never pushes funds to the recipient.
func (e *Escrow) Credit(env *setypes.ScriptEnv, from, account curio.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	st := env.GetState()
	pending := new(big.Int).Add(e.PendingOf(st, account), amount)
	if pending.Cmp(curio.MaxUint256) > 0 {
		return ErrOverflow
	}
	if !st.SubBalance(from, amount) {
		e.logger.Error("credit without backing funds", "from", from, "account", account, "amount", amount)
		return errNoBackingFunds
	}
	st.AddBalance(curio.EscrowAccountAddr, amount)
	e.setPending(st, account, pending)
	env.AddTransfer(from, curio.EscrowAccountAddr, amount, curio.NATIVE)
	return nil
}

// Withdraw releases the full owed balance to the account.
// Fails with ErrNothingToWithdraw when the balance is zero, so a repeated
// call fails cleanly instead of paying twice.
func (e *Escrow) Withdraw(env *setypes.ScriptEnv, account curio.Address) (*big.Int, error) {
	st := env.GetState()
	pending := e.PendingOf(st, account)
	if pending.Sign() == 0 {
		return nil, ErrNothingToWithdraw
	}

	// owed balance is zeroed before any value moves
	e.setPending(st, account, big.NewInt(0))
	if !st.SubBalance(curio.EscrowAccountAddr, pending) {
		e.logger.Error("escrow account underfunded", "account", account, "pending", pending)
		return nil, errNoBackingFunds
	}
	st.AddBalance(account, pending)

	env.AddTransfer(curio.EscrowAccountAddr, account, pending, curio.NATIVE)
	env.AddEvent(curio.EscrowAccountAddr,
		[]curio.Bytes32{WithdrawnEvent, curio.BytesToBytes32(account.Bytes())},
		pending.Bytes())
	e.logger.Info("withdrawn", "account", account, "amount", pending)
	return pending, nil
}
