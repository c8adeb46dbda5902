// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auctions

import (
	"net/http"

	"github.com/curio-house/curio/api/utils"
	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/ledger"
	"github.com/curio-house/curio/script/market"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

type Auctions struct {
	ledger *ledger.Ledger
}

func New(l *ledger.Ledger) *Auctions {
	return &Auctions{l}
}

func (a *Auctions) handleList(w http.ResponseWriter, req *http.Request) error {
	list := a.ledger.ListAuctions()
	out := make([]*Auction, 0, len(list))
	for _, auction := range list {
		out = append(out, convertAuction(auction))
	}
	return utils.WriteJSON(w, out)
}

func (a *Auctions) handleGetByID(w http.ResponseWriter, req *http.Request) error {
	id, err := curio.ParseBytes32(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "id"))
	}
	auction := a.ledger.GetAuction(id)
	if auction == nil {
		return utils.NotFound(market.ErrAuctionNotFound)
	}
	return utils.WriteJSON(w, convertAuction(auction))
}

func (a *Auctions) handleCreate(w http.ResponseWriter, req *http.Request) error {
	var body CreateRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	seller, assetID, reserve, err := body.parse()
	if err != nil {
		return utils.BadRequest(err)
	}
	id, err := a.ledger.CreateAuction(seller, assetID, reserve, body.Duration)
	if err != nil {
		return utils.Forbidden(err)
	}
	return utils.WriteJSON(w, utils.M{"auctionID": id.String()})
}

func (a *Auctions) handleBid(w http.ResponseWriter, req *http.Request) error {
	id, err := curio.ParseBytes32(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "id"))
	}
	var body BidRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	bidder, amount, err := body.parse()
	if err != nil {
		return utils.BadRequest(err)
	}
	if err := a.ledger.PlaceBid(bidder, id, amount); err != nil {
		return utils.Forbidden(err)
	}
	return utils.WriteJSON(w, utils.M{"accepted": true})
}

func (a *Auctions) handleFinalize(w http.ResponseWriter, req *http.Request) error {
	id, err := curio.ParseBytes32(mux.Vars(req)["id"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "id"))
	}
	var body FinalizeRequest
	if err := utils.ParseJSON(req.Body, &body); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	caller, err := curio.ParseAddress(body.Caller)
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "caller"))
	}
	winner, err := a.ledger.Finalize(caller, id)
	if err != nil {
		return utils.Forbidden(err)
	}
	return utils.WriteJSON(w, utils.M{"winner": winner.String()})
}

func (a *Auctions) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(a.handleList))
	sub.Path("").Methods("POST").HandlerFunc(utils.WrapHandlerFunc(a.handleCreate))
	sub.Path("/{id}").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(a.handleGetByID))
	sub.Path("/{id}/bids").Methods("POST").HandlerFunc(utils.WrapHandlerFunc(a.handleBid))
	sub.Path("/{id}/finalize").Methods("POST").HandlerFunc(utils.WrapHandlerFunc(a.handleFinalize))
}
