// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package assets

import (
	"math/big"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/registry"
	"github.com/pkg/errors"
)

type Asset struct {
	ID          string `json:"id"`
	Creator     string `json:"creator"`
	Owner       string `json:"owner"`
	MetadataURI string `json:"metadataURI"`
	RoyaltyBps  uint16 `json:"royaltyBps"`
}

func convertAsset(a *registry.Asset) *Asset {
	return &Asset{
		ID:          a.ID.String(),
		Creator:     a.Creator.String(),
		Owner:       a.Owner.String(),
		MetadataURI: a.MetadataURI,
		RoyaltyBps:  a.RoyaltyBps,
	}
}

type RoyaltyInfo struct {
	Receiver string `json:"receiver"`
	Amount   string `json:"amount"`
}

type Supply struct {
	Issued uint64 `json:"issued"`
	Cap    uint64 `json:"cap"`
}

type MintRequest struct {
	Minter      string `json:"minter"`
	MetadataURI string `json:"metadataURI"`
	Payment     string `json:"payment"`
}

func (r *MintRequest) parse() (curio.Address, *big.Int, error) {
	minter, err := curio.ParseAddress(r.Minter)
	if err != nil {
		return curio.Address{}, nil, errors.WithMessage(err, "minter")
	}
	payment, ok := new(big.Int).SetString(r.Payment, 10)
	if !ok {
		return curio.Address{}, nil, errors.New("payment: bad number")
	}
	return minter, payment, nil
}
