// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

// DevAccount account for development.
type DevAccount struct {
	Address string
	Balance string
}

// DevAccounts returns pre-alloced accounts for solo mode.
func DevAccounts() []DevAccount {
	return []DevAccount{
		{"0xf077b491b355e64048ce21e3a6fc4751eeea77fa", "1000000000000000000000"},
		{"0x435933c8064b4ae76be665428e0307ef2ccfbd68", "1000000000000000000000"},
		{"0x0f872421dc479f3c11edd89512731814d0598db5", "1000000000000000000000"},
		{"0xf370940abdbd2583bc80bfc19d19bc216c88ccf0", "1000000000000000000000"},
		{"0x99602e4bbc0503b8ff4432bb1857f916c3653b85", "1000000000000000000000"},
		{"0x61e7d0c2b25706be3485980f39a3a994a8207acf", "1000000000000000000000"},
		{"0x361277d1b27504f36a3b33d3a52d1f8270331b8c", "1000000000000000000000"},
		{"0xd7f75a0a1287ab2916848909c8531a0ea9412800", "1000000000000000000000"},
		{"0xabef6032b9176c186f6bf984f548bda53349f70a", "1000000000000000000000"},
		{"0x865306084235bf804c8bba8a8d56890940ca8f0b", "1000000000000000000000"},
	}
}

// NewDevnet create genesis for solo mode.
func NewDevnet() *Genesis {
	accs := DevAccounts()
	allocs := make([]Alloc, 0, len(accs))
	for _, a := range accs {
		allocs = append(allocs, Alloc{Address: a.Address, Balance: a.Balance})
	}
	return &Genesis{name: "devnet", allocs: allocs}
}
