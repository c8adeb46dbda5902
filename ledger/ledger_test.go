// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/ledger"
	"github.com/curio-house/curio/logdb"
	"github.com/curio-house/curio/lvldb"
	"github.com/curio-house/curio/registry"
	"github.com/curio-house/curio/script"
	"github.com/curio-house/curio/script/market"
	"github.com/curio-house/curio/script/minter"
	"github.com/curio-house/curio/state"
	"github.com/stretchr/testify/assert"
)

var (
	alice = curio.BytesToAddress([]byte("alice"))
	bob   = curio.BytesToAddress([]byte("bob"))
	carol = curio.BytesToAddress([]byte("carol"))
)

func newLedger(t *testing.T, store *lvldb.LevelDB) *ledger.Ledger {
	t.Helper()
	st := state.New()
	funds := new(big.Int).Mul(curio.MintPriceWei, big.NewInt(1000))
	st.SetBalance(alice, funds)
	st.SetBalance(bob, funds)
	st.SetBalance(carol, funds)
	st.Commit()

	logDB, err := logdb.NewMem()
	if err != nil {
		t.Fatal(err)
	}
	se := script.NewScriptEngine(registry.New())
	l, err := ledger.New(st, se, logDB, store)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestMintThroughLedger(t *testing.T) {
	l := newLedger(t, nil)

	assetID, err := l.Mint(alice, "ipfs://asset-one", curio.MintPriceWei)
	assert.Nil(t, err)
	assert.Equal(t, big.NewInt(1), assetID)
	assert.Equal(t, uint64(1), l.Seq())
	assert.Equal(t, uint64(1), l.IssuedSupply())

	asset := l.GetAsset(assetID)
	assert.NotNil(t, asset)
	assert.Equal(t, alice, asset.Owner)
	assert.Equal(t, alice, asset.Creator)
}

func TestFailedCallRollsBack(t *testing.T) {
	l := newLedger(t, nil)

	before := l.Balance(alice)

	under := new(big.Int).Sub(curio.MintPriceWei, big.NewInt(1))
	_, err := l.Mint(alice, "ipfs://asset-one", under)
	assert.Equal(t, minter.ErrInsufficientPayment, err)

	// nothing moved, nothing sequenced
	assert.Equal(t, before, l.Balance(alice))
	assert.Equal(t, uint64(0), l.Seq())
	assert.Equal(t, uint64(0), l.IssuedSupply())
}

func TestAuctionLifecycleThroughLedger(t *testing.T) {
	l := newLedger(t, nil)

	now := uint64(1000)
	l.SetNowFunc(func() uint64 { return now })

	assetID, err := l.Mint(carol, "ipfs://asset-one", curio.MintPriceWei)
	assert.Nil(t, err)

	auctionID, err := l.CreateAuction(carol, assetID, big.NewInt(100), 3600)
	assert.Nil(t, err)
	assert.NotNil(t, l.GetAuction(auctionID))
	assert.Equal(t, 1, len(l.ListAuctions()))

	assert.Nil(t, l.PlaceBid(alice, auctionID, big.NewInt(150)))
	assert.Nil(t, l.PlaceBid(bob, auctionID, big.NewInt(200)))

	// too early
	_, err = l.Finalize(bob, auctionID)
	assert.Equal(t, market.ErrAuctionStillActive, err)

	now = 5000
	winner, err := l.Finalize(bob, auctionID)
	assert.Nil(t, err)
	assert.Equal(t, bob, winner)

	asset := l.GetAsset(assetID)
	assert.Equal(t, bob, asset.Owner)

	// creator royalty and seller proceeds both pull from escrow; carol is both
	assert.Equal(t, big.NewInt(200), l.PendingWithdrawal(carol))
	assert.Equal(t, big.NewInt(150), l.PendingWithdrawal(alice))

	amount, err := l.Withdraw(alice)
	assert.Nil(t, err)
	assert.Equal(t, big.NewInt(150), amount)
	assert.Equal(t, big.NewInt(0), l.PendingWithdrawal(alice))
}

func TestRoyaltyQueryThroughLedger(t *testing.T) {
	l := newLedger(t, nil)

	assetID, err := l.Mint(carol, "ipfs://asset-one", curio.MintPriceWei)
	assert.Nil(t, err)

	receiver, amount, err := l.RoyaltyInfo(assetID, big.NewInt(10000))
	assert.Nil(t, err)
	assert.Equal(t, carol, receiver)
	assert.Equal(t, big.NewInt(500), amount)
}

func TestLogDBReceivesLogs(t *testing.T) {
	st := state.New()
	st.SetBalance(alice, new(big.Int).Mul(curio.MintPriceWei, big.NewInt(10)))
	st.Commit()

	logDB, err := logdb.NewMem()
	assert.Nil(t, err)
	se := script.NewScriptEngine(registry.New())
	l, err := ledger.New(st, se, logDB, nil)
	assert.Nil(t, err)

	_, err = l.Mint(alice, "ipfs://asset-one", curio.MintPriceWei)
	assert.Nil(t, err)

	minted := minter.MintedEvent
	events, err := logDB.FilterEvents(context.Background(), &logdb.EventFilter{
		CriteriaSet: []*logdb.EventCriteria{
			{Topics: [5]*curio.Bytes32{&minted}},
		},
	})
	assert.Nil(t, err)
	assert.Equal(t, 1, len(events))
	assert.Equal(t, alice, events[0].TxOrigin)

	transfers, err := logDB.FilterTransfers(context.Background(), nil)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(transfers))
	assert.Equal(t, curio.TreasuryAddr, transfers[0].Recipient)
}

func TestRestartRestoresHead(t *testing.T) {
	store, err := lvldb.NewMem()
	assert.Nil(t, err)

	l := newLedger(t, store)
	assetID, err := l.Mint(alice, "ipfs://asset-one", curio.MintPriceWei)
	assert.Nil(t, err)
	assert.Equal(t, uint64(1), l.Seq())

	// a fresh ledger over the same store picks up where the old one stopped
	restarted := newLedger(t, store)
	assert.Equal(t, uint64(1), restarted.Seq())
	assert.Equal(t, uint64(1), restarted.IssuedSupply())

	asset := restarted.GetAsset(assetID)
	assert.NotNil(t, asset)
	assert.Equal(t, alice, asset.Owner)

	// and keeps sequencing from there
	next, err := restarted.Mint(bob, "ipfs://asset-two", curio.MintPriceWei)
	assert.Nil(t, err)
	assert.Equal(t, big.NewInt(2), next)
	assert.Equal(t, uint64(2), restarted.Seq())
}
