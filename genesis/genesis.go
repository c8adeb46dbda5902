// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"math/big"
	"os"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/state"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Alloc is one genesis balance grant.
type Alloc struct {
	Address string `yaml:"address"`
	Balance string `yaml:"balance"`
}

// Genesis seeds a fresh state with the initial account balances.
type Genesis struct {
	name   string
	allocs []Alloc
}

// Name returns network name.
func (g *Genesis) Name() string {
	return g.name
}

// Build writes the allocations into st. A bad address or balance string
// aborts the whole build.
func (g *Genesis) Build(st *state.State) error {
	for _, alloc := range g.allocs {
		addr, err := curio.ParseAddress(alloc.Address)
		if err != nil {
			return errors.Wrapf(err, "genesis alloc %v", alloc.Address)
		}
		bal, ok := new(big.Int).SetString(alloc.Balance, 10)
		if !ok || bal.Sign() < 0 {
			return errors.Errorf("genesis alloc %v: bad balance %q", alloc.Address, alloc.Balance)
		}
		st.SetBalance(addr, bal)
	}
	return nil
}

// NewFromFile loads a yaml allocation file:
//
//	name: my-net
//	allocs:
//	  - address: "0x..."
//	    balance: "1000000000000000000"
func NewFromFile(path string) (*Genesis, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read genesis file")
	}
	var doc struct {
		Name   string  `yaml:"name"`
		Allocs []Alloc `yaml:"allocs"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "parse genesis file")
	}
	if doc.Name == "" {
		doc.Name = "custom-net"
	}
	return &Genesis{name: doc.Name, allocs: doc.Allocs}, nil
}
