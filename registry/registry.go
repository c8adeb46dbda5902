// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/state"
	"github.com/ethereum/go-ethereum/rlp"
)

var (
	// RegistryAccountAddr account that holds every asset record.
	RegistryAccountAddr = curio.BytesToAddress([]byte("curio-asset-registry"))

	ErrAssetNotFound = errors.New("asset not found")
	ErrNotOwner      = errors.New("not the asset owner")
)

// Asset a minted non-fungible item. ID, Creator, MetadataURI and RoyaltyBps
// are immutable after creation; Owner changes only through TransferOwnership.
type Asset struct {
	ID          *big.Int
	Creator     curio.Address
	Owner       curio.Address
	MetadataURI string
	RoyaltyBps  uint16
}

func (a *Asset) ToString() string {
	return fmt.Sprintf("Asset(id=%v, creator=%v, owner=%v, uri=%v, royaltyBps=%v)",
		a.ID, a.Creator.AbbrevString(), a.Owner.AbbrevString(), a.MetadataURI, a.RoyaltyBps)
}

// Registry is the state-backed asset ownership table.
type Registry struct {
	logger *slog.Logger
}

func New() *Registry {
	return &Registry{
		logger: slog.Default().With("pkg", "registry"),
	}
}

func assetKey(id *big.Int) curio.Bytes32 {
	return curio.Blake2b([]byte("asset-record"), id.Bytes())
}

// GetAsset loads an asset record, ErrAssetNotFound if it was never minted.
func (r *Registry) GetAsset(st *state.State, id *big.Int) (*Asset, error) {
	var asset *Asset
	st.DecodeStorage(RegistryAccountAddr, assetKey(id), func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		decoded := Asset{}
		if err := rlp.DecodeBytes(raw, &decoded); err != nil {
			r.logger.Warn("could not decode asset record", "id", id, "err", err)
			return err
		}
		asset = &decoded
		return nil
	})
	if asset == nil {
		return nil, ErrAssetNotFound
	}
	return asset, nil
}

// SetAsset stores an asset record.
func (r *Registry) SetAsset(st *state.State, asset *Asset) {
	st.EncodeStorage(RegistryAccountAddr, assetKey(asset.ID), func() ([]byte, error) {
		return rlp.EncodeToBytes(asset)
	})
}

// OwnerOf returns the current owner of the asset.
func (r *Registry) OwnerOf(st *state.State, id *big.Int) (curio.Address, error) {
	asset, err := r.GetAsset(st, id)
	if err != nil {
		return curio.Address{}, err
	}
	return asset.Owner, nil
}

// CreatorOf returns the royalty receiver declared at mint time.
func (r *Registry) CreatorOf(st *state.State, id *big.Int) (curio.Address, error) {
	asset, err := r.GetAsset(st, id)
	if err != nil {
		return curio.Address{}, err
	}
	return asset.Creator, nil
}

// RoyaltyOf returns the royalty rate of the asset in basis points.
func (r *Registry) RoyaltyOf(st *state.State, id *big.Int) (uint16, error) {
	asset, err := r.GetAsset(st, id)
	if err != nil {
		return 0, err
	}
	return asset.RoyaltyBps, nil
}

// TransferOwnership moves the asset from one owner to another.
// Fails with ErrNotOwner unless from is the current owner.
func (r *Registry) TransferOwnership(st *state.State, id *big.Int, from, to curio.Address) error {
	asset, err := r.GetAsset(st, id)
	if err != nil {
		return err
	}
	if asset.Owner != from {
		return ErrNotOwner
	}
	asset.Owner = to
	r.SetAsset(st, asset)
	return nil
}
