// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"encoding/binary"
	"log/slog"
	"sync"
	"time"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/kv"
	"github.com/curio-house/curio/logdb"
	"github.com/curio-house/curio/script"
	setypes "github.com/curio-house/curio/script/types"
	"github.com/curio-house/curio/state"
	"github.com/curio-house/curio/xenv"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
)

var headKey = []byte("curio-ledger-head")

type head struct {
	Seq   uint64
	State []byte
}

// Ledger is the total-ordering substrate of the engine: one state-mutating
// call at a time, each atomic end-to-end. A call either commits in full or
// rolls back to its checkpoint with no trace, and the sequence number orders
// every accepted call globally.
type Ledger struct {
	mu     sync.RWMutex
	state  *state.State
	se     *script.ScriptEngine
	logDB  *logdb.LogDB
	store  kv.GetPutter
	seq    uint64
	now    func() uint64
	logger *slog.Logger
}

// New creates a ledger over the given state. logDB and store may be nil; with
// a store the ledger persists its head after every accepted call and restores
// it on startup.
func New(st *state.State, se *script.ScriptEngine, logDB *logdb.LogDB, store kv.GetPutter) (*Ledger, error) {
	l := &Ledger{
		state:  st,
		se:     se,
		logDB:  logDB,
		store:  store,
		now:    func() uint64 { return uint64(time.Now().Unix()) },
		logger: slog.Default().With("pkg", "ledger"),
	}
	if store != nil {
		has, err := store.Has(headKey)
		if err != nil {
			return nil, errors.Wrap(err, "probe ledger head")
		}
		if has {
			raw, err := store.Get(headKey)
			if err != nil {
				return nil, errors.Wrap(err, "load ledger head")
			}
			var h head
			if err := rlp.DecodeBytes(raw, &h); err != nil {
				return nil, errors.Wrap(err, "decode ledger head")
			}
			restored, err := state.FromSnapshot(h.State)
			if err != nil {
				return nil, errors.Wrap(err, "restore state snapshot")
			}
			l.state = restored
			l.seq = h.Seq
			l.logger.Info("restored ledger head", "seq", l.seq)
		}
	}
	return l, nil
}

// SetNowFunc overrides the ambient clock the ledger stamps calls with.
func (l *Ledger) SetNowFunc(now func() uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// Now returns current ambient ledger time.
func (l *Ledger) Now() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.now()
}

// Seq returns the sequence number of the last accepted call.
func (l *Ledger) Seq() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.seq
}

// Execute runs one pattern-prefixed call payload against the ledger.
// On any error the state is exactly as before the call.
func (l *Ledger) Execute(data []byte, origin curio.Address) (*setypes.ScriptEngineOutput, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	seq := l.seq + 1
	now := l.now()

	var seqBytes [8]byte
	binary.BigEndian.PutUint64(seqBytes[:], seq)
	txCtx := &xenv.TransactionContext{
		ID:     curio.Blake2b(origin.Bytes(), seqBytes[:]),
		Origin: origin,
		Nonce:  seq,
	}
	blockCtx := &xenv.BlockContext{Number: seq, Time: now}
	senv := setypes.NewScriptEnv(l.state, blockCtx, txCtx, &curio.ScriptEngineAddr)

	checkpoint := l.state.NewCheckpoint()
	output, leftOverGas, err := l.se.HandleScriptData(senv, data, &curio.ScriptEngineAddr, curio.ExecutionGasLimit)
	if err == nil {
		err = l.state.Err()
	}
	if err != nil {
		l.state.RevertTo(checkpoint)
		return nil, err
	}

	l.state.Commit()
	l.seq = seq
	l.logger.Debug("executed call", "seq", seq, "origin", origin, "gasUsed", curio.ExecutionGasLimit-leftOverGas)

	if l.logDB != nil {
		if werr := l.logDB.Prepare(seq, now).
			ForTransaction(txCtx.ID, origin).
			Insert(output.GetEvents(), output.GetTransfers()).Commit(); werr != nil {
			l.logger.Warn("could not append to log db", "seq", seq, "err", werr)
		}
	}
	if l.store != nil {
		if serr := l.saveHead(); serr != nil {
			l.logger.Warn("could not persist ledger head", "seq", seq, "err", serr)
		}
	}
	return output, nil
}

func (l *Ledger) saveHead() error {
	snap, err := l.state.Snapshot()
	if err != nil {
		return err
	}
	raw, err := rlp.EncodeToBytes(&head{Seq: l.seq, State: snap})
	if err != nil {
		return err
	}
	return l.store.Put(headKey, raw)
}
