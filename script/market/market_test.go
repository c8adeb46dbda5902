// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package market_test

import (
	"math/big"
	"testing"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/registry"
	"github.com/curio-house/curio/script/escrow"
	"github.com/curio-house/curio/script/market"
	setypes "github.com/curio-house/curio/script/types"
	"github.com/curio-house/curio/state"
	"github.com/curio-house/curio/xenv"
	"github.com/stretchr/testify/assert"
)

var (
	carol = curio.BytesToAddress([]byte("carol-creator"))
	sam   = curio.BytesToAddress([]byte("sam-seller"))
	alice = curio.BytesToAddress([]byte("alice-bidder"))
	bob   = curio.BytesToAddress([]byte("bob-bidder"))

	assetID = big.NewInt(1)
)

func setup() (*state.State, *registry.Registry, *market.Market) {
	st := state.New()
	reg := registry.New()
	m := market.NewMarket(reg, escrow.New())

	reg.SetAsset(st, &registry.Asset{
		ID:          assetID,
		Creator:     carol,
		Owner:       sam,
		MetadataURI: "ipfs://asset-one",
		RoyaltyBps:  curio.DefaultRoyaltyBps,
	})
	st.SetBalance(alice, big.NewInt(1000))
	st.SetBalance(bob, big.NewInt(1000))
	return st, reg, m
}

func call(t *testing.T, m *market.Market, st *state.State, origin curio.Address, now uint64, body *market.MarketBody) (*setypes.ScriptEngineOutput, error) {
	t.Helper()
	payload := market.EncodeBytes(body)
	assert.NotEmpty(t, payload)
	senv := setypes.NewScriptEnv(st,
		&xenv.BlockContext{Number: 1, Time: now},
		&xenv.TransactionContext{Origin: origin},
		&curio.ScriptEngineAddr)
	out, _, err := m.Handle(senv, payload, &curio.ScriptEngineAddr, curio.ExecutionGasLimit)
	return out, err
}

func createAuction(t *testing.T, m *market.Market, st *state.State, now uint64) curio.Bytes32 {
	t.Helper()
	out, err := call(t, m, st, sam, now, &market.MarketBody{
		Opcode:       market.OP_CREATE,
		AssetID:      assetID,
		ReservePrice: big.NewInt(100),
		Duration:     3600,
	})
	assert.Nil(t, err)
	return curio.BytesToBytes32(out.GetData())
}

func TestCreateAuction(t *testing.T) {
	st, reg, m := setup()

	id := createAuction(t, m, st, 1000)
	auction := m.GetAuction(st, id)
	assert.NotNil(t, auction)
	assert.Equal(t, sam, auction.Seller)
	assert.Equal(t, big.NewInt(100), auction.ReservePrice)
	assert.Equal(t, big.NewInt(100), auction.HighestBid)
	assert.False(t, auction.HasBidder())
	assert.Equal(t, uint64(1000), auction.CreateTime)
	assert.Equal(t, uint64(4600), auction.Deadline)
	assert.True(t, auction.IsActive())

	// asset custody moved to the market for the auction lifetime
	owner, err := reg.OwnerOf(st, assetID)
	assert.Nil(t, err)
	assert.Equal(t, curio.MarketAccountAddr, owner)

	ids := m.GetAuctionIDs(st)
	assert.Equal(t, []curio.Bytes32{id}, ids)
}

func TestCreateAuctionInvalidDuration(t *testing.T) {
	st, _, m := setup()

	for _, duration := range []uint64{0, curio.MaxAuctionDuration + 1} {
		_, err := call(t, m, st, sam, 1000, &market.MarketBody{
			Opcode:       market.OP_CREATE,
			AssetID:      assetID,
			ReservePrice: big.NewInt(100),
			Duration:     duration,
		})
		assert.Equal(t, market.ErrInvalidDuration, err)
	}
}

func TestCreateAuctionOverflowingReserve(t *testing.T) {
	st, reg, m := setup()

	over := new(big.Int).Add(curio.MaxUint256, big.NewInt(1))
	_, err := call(t, m, st, sam, 1000, &market.MarketBody{
		Opcode:       market.OP_CREATE,
		AssetID:      assetID,
		ReservePrice: over,
		Duration:     3600,
	})
	assert.Equal(t, market.ErrOverflow, err)
	assert.Empty(t, m.GetAuctionIDs(st))

	// asset custody untouched
	owner, err := reg.OwnerOf(st, assetID)
	assert.Nil(t, err)
	assert.Equal(t, sam, owner)
}

func TestCreateAuctionNotOwner(t *testing.T) {
	st, _, m := setup()

	_, err := call(t, m, st, alice, 1000, &market.MarketBody{
		Opcode:       market.OP_CREATE,
		AssetID:      assetID,
		ReservePrice: big.NewInt(100),
		Duration:     3600,
	})
	assert.Equal(t, market.ErrNotOwner, err)
}

func TestBidMustExceedReserve(t *testing.T) {
	st, _, m := setup()
	id := createAuction(t, m, st, 1000)

	// equal to the reserve is not enough
	_, err := call(t, m, st, alice, 1100, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    alice,
		Amount:    big.NewInt(100),
	})
	assert.Equal(t, market.ErrBidTooLow, err)

	_, err = call(t, m, st, alice, 1100, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    alice,
		Amount:    big.NewInt(101),
	})
	assert.Nil(t, err)
}

func TestBidOverflowingAmount(t *testing.T) {
	st, _, m := setup()
	id := createAuction(t, m, st, 1000)

	over := new(big.Int).Add(curio.MaxUint256, big.NewInt(1))
	_, err := call(t, m, st, alice, 1100, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    alice,
		Amount:    over,
	})
	assert.Equal(t, market.ErrOverflow, err)

	auction := m.GetAuction(st, id)
	assert.Equal(t, big.NewInt(100), auction.HighestBid)
	assert.False(t, auction.HasBidder())
	assert.Equal(t, big.NewInt(1000), st.GetBalance(alice))
}

func TestBidStrictIncrease(t *testing.T) {
	st, _, m := setup()
	id := createAuction(t, m, st, 1000)

	_, err := call(t, m, st, alice, 1100, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    alice,
		Amount:    big.NewInt(150),
	})
	assert.Nil(t, err)

	// matching the highest bid is rejected
	_, err = call(t, m, st, bob, 1200, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    bob,
		Amount:    big.NewInt(150),
	})
	assert.Equal(t, market.ErrBidTooLow, err)

	auction := m.GetAuction(st, id)
	assert.Equal(t, alice, auction.HighestBidder)
	assert.Equal(t, big.NewInt(150), auction.HighestBid)
}

func TestBidLocksFundsAndRefundsByOutbid(t *testing.T) {
	st, _, m := setup()
	id := createAuction(t, m, st, 1000)

	_, err := call(t, m, st, alice, 1100, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    alice,
		Amount:    big.NewInt(150),
	})
	assert.Nil(t, err)
	assert.Equal(t, big.NewInt(850), st.GetBalance(alice))
	assert.Equal(t, big.NewInt(150), st.GetBalance(curio.MarketAccountAddr))

	_, err = call(t, m, st, bob, 1200, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    bob,
		Amount:    big.NewInt(200),
	})
	assert.Nil(t, err)

	// alice's bid is withdrawable, not pushed back
	assert.Equal(t, big.NewInt(850), st.GetBalance(alice))
	assert.Equal(t, big.NewInt(150), m.Escrow().PendingOf(st, alice))
	assert.Equal(t, big.NewInt(200), st.GetBalance(curio.MarketAccountAddr))
	assert.Equal(t, big.NewInt(150), st.GetBalance(curio.EscrowAccountAddr))
}

func TestBidWrongOrigin(t *testing.T) {
	st, _, m := setup()
	id := createAuction(t, m, st, 1000)

	_, err := call(t, m, st, bob, 1100, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    alice,
		Amount:    big.NewInt(150),
	})
	assert.NotNil(t, err)
}

func TestBidInsufficientFunds(t *testing.T) {
	st, _, m := setup()
	id := createAuction(t, m, st, 1000)

	_, err := call(t, m, st, alice, 1100, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    alice,
		Amount:    big.NewInt(1001),
	})
	assert.Equal(t, market.ErrInsufficientFunds, err)
	assert.Equal(t, big.NewInt(1000), st.GetBalance(alice))
	assert.Equal(t, big.NewInt(0), st.GetBalance(curio.MarketAccountAddr))
}

func TestBidAfterDeadline(t *testing.T) {
	st, _, m := setup()
	id := createAuction(t, m, st, 1000)

	_, err := call(t, m, st, alice, 4600, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    alice,
		Amount:    big.NewInt(150),
	})
	assert.Equal(t, market.ErrAuctionNotActive, err)
}

func TestBidUnknownAuction(t *testing.T) {
	st, _, m := setup()

	_, err := call(t, m, st, alice, 1100, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: curio.BytesToBytes32([]byte("no-such-auction")),
		Bidder:    alice,
		Amount:    big.NewInt(150),
	})
	assert.Equal(t, market.ErrAuctionNotFound, err)
}

func TestFinalizeBeforeDeadline(t *testing.T) {
	st, _, m := setup()
	id := createAuction(t, m, st, 1000)

	_, err := call(t, m, st, bob, 2000, &market.MarketBody{
		Opcode:    market.OP_FINALIZE,
		AuctionID: id,
	})
	assert.Equal(t, market.ErrAuctionStillActive, err)
}

func TestFinalizeSettlement(t *testing.T) {
	st, reg, m := setup()
	id := createAuction(t, m, st, 1000)

	_, err := call(t, m, st, alice, 1100, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    alice,
		Amount:    big.NewInt(150),
	})
	assert.Nil(t, err)
	_, err = call(t, m, st, bob, 1200, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    bob,
		Amount:    big.NewInt(200),
	})
	assert.Nil(t, err)

	// anyone may finalize once the deadline passed
	out, err := call(t, m, st, carol, 4600, &market.MarketBody{
		Opcode:    market.OP_FINALIZE,
		AuctionID: id,
	})
	assert.Nil(t, err)
	assert.Equal(t, bob.Bytes(), out.GetData())

	// the winner owns the asset
	owner, err := reg.OwnerOf(st, assetID)
	assert.Nil(t, err)
	assert.Equal(t, bob, owner)

	// 200 * 500bps = 10 royalty to the creator, remainder to the seller
	assert.Equal(t, big.NewInt(10), m.Escrow().PendingOf(st, carol))
	assert.Equal(t, big.NewInt(190), m.Escrow().PendingOf(st, sam))
	assert.Equal(t, big.NewInt(150), m.Escrow().PendingOf(st, alice))

	// market custody fully drained, everything owed sits under escrow
	assert.Equal(t, big.NewInt(0), st.GetBalance(curio.MarketAccountAddr))
	assert.Equal(t, big.NewInt(350), st.GetBalance(curio.EscrowAccountAddr))

	auction := m.GetAuction(st, id)
	assert.Equal(t, market.STATE_FINALIZED, auction.State)
	assert.True(t, auction.Settled)

	// settlement is final
	_, err = call(t, m, st, carol, 4700, &market.MarketBody{
		Opcode:    market.OP_FINALIZE,
		AuctionID: id,
	})
	assert.Equal(t, market.ErrAlreadySettled, err)
}

func TestFinalizeNoBids(t *testing.T) {
	st, reg, m := setup()
	id := createAuction(t, m, st, 1000)

	_, err := call(t, m, st, bob, 4600, &market.MarketBody{
		Opcode:    market.OP_FINALIZE,
		AuctionID: id,
	})
	assert.Nil(t, err)

	// asset handed back, no funds moved
	owner, err := reg.OwnerOf(st, assetID)
	assert.Nil(t, err)
	assert.Equal(t, sam, owner)
	assert.Equal(t, big.NewInt(0), st.GetBalance(curio.EscrowAccountAddr))

	auction := m.GetAuction(st, id)
	assert.Equal(t, market.STATE_CANCELLED, auction.State)

	_, err = call(t, m, st, bob, 4700, &market.MarketBody{
		Opcode:    market.OP_FINALIZE,
		AuctionID: id,
	})
	assert.Equal(t, market.ErrAlreadySettled, err)
}

func TestWithdrawRefund(t *testing.T) {
	st, _, m := setup()
	id := createAuction(t, m, st, 1000)

	_, err := call(t, m, st, alice, 1100, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    alice,
		Amount:    big.NewInt(150),
	})
	assert.Nil(t, err)
	_, err = call(t, m, st, bob, 1200, &market.MarketBody{
		Opcode:    market.OP_BID,
		AuctionID: id,
		Bidder:    bob,
		Amount:    big.NewInt(200),
	})
	assert.Nil(t, err)

	out, err := call(t, m, st, alice, 1300, &market.MarketBody{
		Opcode: market.OP_WITHDRAW,
		Bidder: alice,
	})
	assert.Nil(t, err)
	assert.Equal(t, big.NewInt(150).Bytes(), out.GetData())
	assert.Equal(t, big.NewInt(1000), st.GetBalance(alice))

	// a second withdrawal has nothing to pull
	_, err = call(t, m, st, alice, 1400, &market.MarketBody{
		Opcode: market.OP_WITHDRAW,
		Bidder: alice,
	})
	assert.Equal(t, escrow.ErrNothingToWithdraw, err)
	assert.Equal(t, big.NewInt(1000), st.GetBalance(alice))
}

// every unit paid in by bidders is either locked, withdrawable, or back in a
// bidder's balance; nothing leaks
func TestConservation(t *testing.T) {
	st, _, m := setup()
	id := createAuction(t, m, st, 1000)

	bids := []struct {
		bidder curio.Address
		amount int64
	}{
		{alice, 150},
		{bob, 200},
		{alice, 300},
		{bob, 450},
	}
	for i, b := range bids {
		_, err := call(t, m, st, b.bidder, 1100+uint64(i), &market.MarketBody{
			Opcode:    market.OP_BID,
			AuctionID: id,
			Bidder:    b.bidder,
			Amount:    big.NewInt(b.amount),
		})
		assert.Nil(t, err)
	}

	_, err := call(t, m, st, sam, 4600, &market.MarketBody{
		Opcode:    market.OP_FINALIZE,
		AuctionID: id,
	})
	assert.Nil(t, err)

	total := new(big.Int)
	total.Add(total, st.GetBalance(alice))
	total.Add(total, st.GetBalance(bob))
	total.Add(total, st.GetBalance(curio.MarketAccountAddr))
	total.Add(total, st.GetBalance(curio.EscrowAccountAddr))
	assert.Equal(t, big.NewInt(2000), total)

	pending := new(big.Int)
	pending.Add(pending, m.Escrow().PendingOf(st, alice))
	pending.Add(pending, m.Escrow().PendingOf(st, bob))
	pending.Add(pending, m.Escrow().PendingOf(st, carol))
	pending.Add(pending, m.Escrow().PendingOf(st, sam))
	assert.Equal(t, st.GetBalance(curio.EscrowAccountAddr), pending)
}
