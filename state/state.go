// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"math/big"
	"sort"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/stackedmap"
	"github.com/ethereum/go-ethereum/rlp"
)

// State manages the account ledger: native balances plus per-account keyed
// storage for module records. All mutations go through a stacked journal, so
// a failed call can be rolled back to its checkpoint with no residue.
type State struct {
	balances map[curio.Address]*big.Int
	storage  map[storageKey][]byte
	sm       *stackedmap.StackedMap
	err      error
}

type (
	balanceKey curio.Address
	storageKey struct {
		addr curio.Address
		key  curio.Bytes32
	}
)

// New create a state object with empty accounts.
func New() *State {
	state := &State{
		balances: make(map[curio.Address]*big.Int),
		storage:  make(map[storageKey][]byte),
	}
	state.sm = stackedmap.New(func(key interface{}) (interface{}, bool) {
		return state.baseGetter(key)
	})
	return state
}

func (s *State) baseGetter(key interface{}) (interface{}, bool) {
	switch k := key.(type) {
	case balanceKey:
		if b, ok := s.balances[curio.Address(k)]; ok {
			return b, true
		}
		return big.NewInt(0), true
	case storageKey:
		if raw, ok := s.storage[k]; ok {
			return raw, true
		}
		return []byte(nil), true
	}
	panic("unexpected state key type")
}

func (s *State) setError(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Err returns first occurred error.
func (s *State) Err() error {
	return s.err
}

// GetBalance returns native balance of the account.
func (s *State) GetBalance(addr curio.Address) *big.Int {
	v, _ := s.sm.Get(balanceKey(addr))
	return new(big.Int).Set(v.(*big.Int))
}

// SetBalance sets native balance of the account.
func (s *State) SetBalance(addr curio.Address, balance *big.Int) {
	s.sm.Put(balanceKey(addr), new(big.Int).Set(balance))
}

// AddBalance adds amount to the account's balance.
func (s *State) AddBalance(addr curio.Address, amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	s.SetBalance(addr, new(big.Int).Add(s.GetBalance(addr), amount))
}

// SubBalance subtracts amount from the account's balance.
// Returns false and leaves the balance untouched if the balance is insufficient.
func (s *State) SubBalance(addr curio.Address, amount *big.Int) bool {
	if amount.Sign() == 0 {
		return true
	}
	balance := s.GetBalance(addr)
	if balance.Cmp(amount) < 0 {
		return false
	}
	s.SetBalance(addr, new(big.Int).Sub(balance, amount))
	return true
}

// GetStorage returns raw storage value for the given account key.
func (s *State) GetStorage(addr curio.Address, key curio.Bytes32) []byte {
	v, _ := s.sm.Get(storageKey{addr, key})
	return v.([]byte)
}

// SetStorage sets raw storage value for the given account key.
func (s *State) SetStorage(addr curio.Address, key curio.Bytes32, raw []byte) {
	s.sm.Put(storageKey{addr, key}, raw)
}

// EncodeStorage encodes the value produced by enc and stores it under the
// given account key. Errors are recorded on the state.
func (s *State) EncodeStorage(addr curio.Address, key curio.Bytes32, enc func() ([]byte, error)) {
	raw, err := enc()
	if err != nil {
		s.setError(err)
		return
	}
	s.SetStorage(addr, key, raw)
}

// DecodeStorage loads raw storage under the given account key and feeds it to
// dec. An absent key yields an empty raw slice.
func (s *State) DecodeStorage(addr curio.Address, key curio.Bytes32, dec func([]byte) error) {
	if err := dec(s.GetStorage(addr, key)); err != nil {
		s.setError(err)
	}
}

// NewCheckpoint makes a checkpoint of the current state.
// It returns the checkpoint to be passed to RevertTo.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo reverts the state to the given checkpoint.
// All changes journaled after the checkpoint are dropped.
func (s *State) RevertTo(checkpoint int) {
	s.sm.PopTo(checkpoint)
}

// Commit flattens journaled changes into the base maps and resets the journal.
// Called once per successfully executed call.
func (s *State) Commit() {
	s.sm.Journal(func(key, value interface{}) bool {
		switch k := key.(type) {
		case balanceKey:
			s.balances[curio.Address(k)] = value.(*big.Int)
		case storageKey:
			raw := value.([]byte)
			if len(raw) == 0 {
				delete(s.storage, k)
			} else {
				s.storage[k] = raw
			}
		}
		return true
	})
	s.sm = stackedmap.New(func(key interface{}) (interface{}, bool) {
		return s.baseGetter(key)
	})
}

type snapshotStorage struct {
	Key   curio.Bytes32
	Value []byte
}

type snapshotAccount struct {
	Addr    curio.Address
	Balance *big.Int
	Storage []snapshotStorage
}

// Snapshot serializes committed state into a deterministic byte blob.
// Journaled but uncommitted changes are not included.
func (s *State) Snapshot() ([]byte, error) {
	accounts := make(map[curio.Address]*snapshotAccount)
	account := func(addr curio.Address) *snapshotAccount {
		if acc, ok := accounts[addr]; ok {
			return acc
		}
		acc := &snapshotAccount{Addr: addr, Balance: big.NewInt(0)}
		accounts[addr] = acc
		return acc
	}
	for addr, balance := range s.balances {
		account(addr).Balance = balance
	}
	for sk, raw := range s.storage {
		acc := account(sk.addr)
		acc.Storage = append(acc.Storage, snapshotStorage{Key: sk.key, Value: raw})
	}

	list := make([]*snapshotAccount, 0, len(accounts))
	for _, acc := range accounts {
		sort.Slice(acc.Storage, func(i, j int) bool {
			return bytes.Compare(acc.Storage[i].Key.Bytes(), acc.Storage[j].Key.Bytes()) < 0
		})
		list = append(list, acc)
	}
	sort.Slice(list, func(i, j int) bool {
		return bytes.Compare(list[i].Addr.Bytes(), list[j].Addr.Bytes()) < 0
	})
	return rlp.EncodeToBytes(list)
}

// FromSnapshot rebuilds a state object from a Snapshot blob.
func FromSnapshot(raw []byte) (*State, error) {
	var list []*snapshotAccount
	if err := rlp.DecodeBytes(raw, &list); err != nil {
		return nil, err
	}
	state := New()
	for _, acc := range list {
		state.balances[acc.Addr] = acc.Balance
		for _, entry := range acc.Storage {
			state.storage[storageKey{acc.Addr, entry.Key}] = entry.Value
		}
	}
	return state, nil
}
