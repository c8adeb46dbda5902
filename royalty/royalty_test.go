// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package royalty_test

import (
	"math/big"
	"testing"

	"github.com/curio-house/curio/royalty"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	creator, seller := royalty.Split(big.NewInt(10000), 500)
	assert.Equal(t, big.NewInt(500), creator)
	assert.Equal(t, big.NewInt(9500), seller)
}

func TestSplitRoundsDown(t *testing.T) {
	// 99 * 500 / 10000 = 4.95, creator share rounds down
	creator, seller := royalty.Split(big.NewInt(99), 500)
	assert.Equal(t, big.NewInt(4), creator)
	assert.Equal(t, big.NewInt(95), seller)
}

func TestSplitZeroBps(t *testing.T) {
	creator, seller := royalty.Split(big.NewInt(12345), 0)
	assert.Equal(t, big.NewInt(0), creator)
	assert.Equal(t, big.NewInt(12345), seller)
}

func TestSplitConserves(t *testing.T) {
	prices := []int64{1, 7, 99, 100, 10000, 999999999}
	for _, p := range prices {
		price := big.NewInt(p)
		creator, seller := royalty.Split(price, 500)
		sum := new(big.Int).Add(creator, seller)
		assert.Equal(t, price, sum, "creator+seller must equal sale price for %v", p)
		assert.True(t, creator.Sign() >= 0)
		assert.True(t, seller.Sign() >= 0)
	}
}
