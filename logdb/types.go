// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"math/big"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/tx"
)

// Event represents tx.Event that can be stored in db.
type Event struct {
	Seq      uint64
	Index    uint32
	Time     uint64
	TxID     curio.Bytes32
	TxOrigin curio.Address
	Address  curio.Address // always a module account address
	Topics   [5]*curio.Bytes32
	Data     []byte
}

// newEvent converts tx.Event to Event.
func newEvent(seq uint64, time uint64, index uint32, txID curio.Bytes32, txOrigin curio.Address, txEvent *tx.Event) *Event {
	ev := &Event{
		Seq:      seq,
		Index:    index,
		Time:     time,
		TxID:     txID,
		TxOrigin: txOrigin,
		Address:  txEvent.Address,
		Data:     txEvent.Data,
	}
	for i := 0; i < len(txEvent.Topics) && i < len(ev.Topics); i++ {
		ev.Topics[i] = &txEvent.Topics[i]
	}
	return ev
}

// Transfer represents tx.Transfer that can be stored in db.
type Transfer struct {
	Seq       uint64
	Index     uint32
	Time      uint64
	TxID      curio.Bytes32
	TxOrigin  curio.Address
	Sender    curio.Address
	Recipient curio.Address
	Amount    *big.Int
	Token     uint32
}

// newTransfer converts tx.Transfer to Transfer.
func newTransfer(seq uint64, time uint64, index uint32, txID curio.Bytes32, txOrigin curio.Address, transfer *tx.Transfer) *Transfer {
	return &Transfer{
		Seq:       seq,
		Index:     index,
		Time:      time,
		TxID:      txID,
		TxOrigin:  txOrigin,
		Sender:    transfer.Sender,
		Recipient: transfer.Recipient,
		Amount:    transfer.Amount,
		Token:     uint32(transfer.Token),
	}
}

type RangeType string

const (
	Seq  RangeType = "seq"
	Time RangeType = "time"
)

type Order string

const (
	ASC  Order = "asc"
	DESC Order = "desc"
)

type Range struct {
	Unit RangeType
	From uint64
	To   uint64
}

type Options struct {
	Offset uint64
	Limit  uint64
}

type EventCriteria struct {
	Address *curio.Address // always a module account address
	Topics  [5]*curio.Bytes32
}

// EventFilter filter
type EventFilter struct {
	CriteriaSet []*EventCriteria
	Range       *Range
	Options     *Options
	Order       Order // default asc
}

type TransferCriteria struct {
	TxOrigin  *curio.Address // who sent the call
	Sender    *curio.Address // who transferred value
	Recipient *curio.Address // who received value
}

type TransferFilter struct {
	TxID        *curio.Bytes32
	CriteriaSet []*TransferCriteria
	Range       *Range
	Options     *Options
	Order       Order // default asc
}
