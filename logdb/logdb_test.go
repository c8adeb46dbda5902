// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/logdb"
	"github.com/curio-house/curio/tx"
	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	db, err := logdb.NewMem()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	txEvent := &tx.Event{
		Address: curio.BytesToAddress([]byte("addr")),
		Topics:  []curio.Bytes32{curio.BytesToBytes32([]byte("topic0")), curio.BytesToBytes32([]byte("topic1"))},
		Data:    []byte("minted"),
	}

	for seq := uint64(1); seq <= 100; seq++ {
		if err := db.Prepare(seq, 1000+seq).ForTransaction(curio.BytesToBytes32([]byte("txID")), curio.BytesToAddress([]byte("txOrigin"))).
			Insert(tx.Events{txEvent}, nil).Commit(); err != nil {
			t.Fatal(err)
		}
	}

	limit := 5
	t0 := curio.BytesToBytes32([]byte("topic0"))
	t1 := curio.BytesToBytes32([]byte("topic1"))
	addr := curio.BytesToAddress([]byte("addr"))
	es, err := db.FilterEvents(context.Background(), &logdb.EventFilter{
		Range: &logdb.Range{
			Unit: logdb.Seq,
			From: 1,
			To:   10,
		},
		Options: &logdb.Options{
			Offset: 0,
			Limit:  uint64(limit),
		},
		Order: logdb.DESC,
		CriteriaSet: []*logdb.EventCriteria{
			{
				Address: &addr,
			},
			{
				Address: &addr,
				Topics:  [5]*curio.Bytes32{&t0, &t1, nil, nil, nil},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, limit, len(es))
	assert.Equal(t, uint64(10), es[0].Seq)
	assert.Equal(t, addr, es[0].Address)
	assert.Equal(t, &t0, es[0].Topics[0])
}

func TestTransfers(t *testing.T) {
	db, err := logdb.NewMem()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	sender := curio.BytesToAddress([]byte("sender"))
	recipient := curio.BytesToAddress([]byte("recipient"))
	transfer := &tx.Transfer{
		Sender:    sender,
		Recipient: recipient,
		Amount:    big.NewInt(150),
		Token:     curio.NATIVE,
	}

	for seq := uint64(1); seq <= 20; seq++ {
		if err := db.Prepare(seq, 2000+seq).ForTransaction(curio.BytesToBytes32([]byte("txID")), sender).
			Insert(nil, tx.Transfers{transfer}).Commit(); err != nil {
			t.Fatal(err)
		}
	}

	ts, err := db.FilterTransfers(context.Background(), &logdb.TransferFilter{
		Range: &logdb.Range{
			Unit: logdb.Seq,
			From: 1,
			To:   20,
		},
		CriteriaSet: []*logdb.TransferCriteria{
			{Recipient: &recipient},
		},
		Order: logdb.ASC,
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 20, len(ts))
	assert.Equal(t, big.NewInt(150), ts[0].Amount)
	assert.Equal(t, sender, ts[0].Sender)

	// criteria that matches nothing
	other := curio.BytesToAddress([]byte("other"))
	ts, err = db.FilterTransfers(context.Background(), &logdb.TransferFilter{
		CriteriaSet: []*logdb.TransferCriteria{
			{Recipient: &other},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0, len(ts))
}
