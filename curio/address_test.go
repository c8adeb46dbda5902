// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package curio_test

import (
	"encoding/json"
	"testing"

	"github.com/curio-house/curio/curio"
	"github.com/stretchr/testify/assert"
)

func TestParseAddress(t *testing.T) {
	addr := curio.BytesToAddress([]byte("account1"))
	parsed, err := curio.ParseAddress(addr.String())
	assert.Nil(t, err)
	assert.Equal(t, addr, parsed)

	_, err = curio.ParseAddress("not-an-address")
	assert.NotNil(t, err)

	_, err = curio.ParseAddress("0x1234")
	assert.NotNil(t, err)
}

func TestAddressJSON(t *testing.T) {
	addr := curio.BytesToAddress([]byte("account1"))
	raw, err := json.Marshal(addr)
	assert.Nil(t, err)

	var decoded curio.Address
	assert.Nil(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, addr, decoded)
}

func TestBytes32RoundTrip(t *testing.T) {
	b := curio.Blake2b([]byte("payload"))
	parsed, err := curio.ParseBytes32(b.String())
	assert.Nil(t, err)
	assert.Equal(t, b, parsed)

	assert.False(t, b.IsZero())
	assert.True(t, curio.Bytes32{}.IsZero())
}

func TestBlake2bDeterministic(t *testing.T) {
	a := curio.Blake2b([]byte("a"), []byte("b"))
	b := curio.Blake2b([]byte("ab"))
	assert.Equal(t, a, b, "multi-slice input hashes as the concatenation")

	c := curio.Blake2b([]byte("ba"))
	assert.NotEqual(t, a, c)
}
