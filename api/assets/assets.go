// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package assets

import (
	"math/big"
	"net/http"

	"github.com/curio-house/curio/api/utils"
	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/ledger"
	"github.com/curio-house/curio/registry"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

type Assets struct {
	ledger *ledger.Ledger
}

func New(l *ledger.Ledger) *Assets {
	return &Assets{l}
}

func (a *Assets) handleGetByID(w http.ResponseWriter, req *http.Request) error {
	id, ok := new(big.Int).SetString(mux.Vars(req)["id"], 10)
	if !ok {
		return utils.BadRequest(errors.New("id: bad number"))
	}
	asset := a.ledger.GetAsset(id)
	if asset == nil {
		return utils.NotFound(registry.ErrAssetNotFound)
	}
	return utils.WriteJSON(w, convertAsset(asset))
}

func (a *Assets) handleGetRoyaltyInfo(w http.ResponseWriter, req *http.Request) error {
	id, ok := new(big.Int).SetString(mux.Vars(req)["id"], 10)
	if !ok {
		return utils.BadRequest(errors.New("id: bad number"))
	}
	salePrice, ok := new(big.Int).SetString(req.URL.Query().Get("salePrice"), 10)
	if !ok {
		return utils.BadRequest(errors.New("salePrice: bad number"))
	}
	receiver, amount, err := a.ledger.RoyaltyInfo(id, salePrice)
	if err != nil {
		return utils.NotFound(err)
	}
	return utils.WriteJSON(w, &RoyaltyInfo{
		Receiver: receiver.String(),
		Amount:   amount.String(),
	})
}

func (a *Assets) handleGetSupply(w http.ResponseWriter, req *http.Request) error {
	return utils.WriteJSON(w, &Supply{
		Issued: a.ledger.IssuedSupply(),
		Cap:    curio.SupplyCap,
	})
}

func (a *Assets) handleMint(w http.ResponseWriter, req *http.Request) error {
	var body MintRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	minter, payment, err := body.parse()
	if err != nil {
		return utils.BadRequest(err)
	}
	assetID, err := a.ledger.Mint(minter, body.MetadataURI, payment)
	if err != nil {
		return utils.Forbidden(err)
	}
	return utils.WriteJSON(w, utils.M{"assetID": assetID.String()})
}

func (a *Assets) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("").Methods("POST").HandlerFunc(utils.WrapHandlerFunc(a.handleMint))
	sub.Path("/supply").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(a.handleGetSupply))
	sub.Path("/{id}").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(a.handleGetByID))
	sub.Path("/{id}/royalty").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(a.handleGetRoyaltyInfo))
}
