// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package escrow

import (
	"net/http"

	"github.com/curio-house/curio/api/utils"
	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/ledger"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

type Escrow struct {
	ledger *ledger.Ledger
}

func New(l *ledger.Ledger) *Escrow {
	return &Escrow{l}
}

func (e *Escrow) handleGetAccount(w http.ResponseWriter, req *http.Request) error {
	addr, err := curio.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	pending := e.ledger.PendingWithdrawal(addr)
	balance := e.ledger.Balance(addr)
	return utils.WriteJSON(w, &Account{
		Balance: (*math.HexOrDecimal256)(balance),
		Pending: (*math.HexOrDecimal256)(pending),
	})
}

func (e *Escrow) handleWithdraw(w http.ResponseWriter, req *http.Request) error {
	addr, err := curio.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	amount, err := e.ledger.Withdraw(addr)
	if err != nil {
		return utils.Forbidden(err)
	}
	return utils.WriteJSON(w, utils.M{"amount": amount.String()})
}

func (e *Escrow) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("/{address}").Methods("GET").HandlerFunc(utils.WrapHandlerFunc(e.handleGetAccount))
	sub.Path("/{address}/withdrawals").Methods("POST").HandlerFunc(utils.WrapHandlerFunc(e.handleWithdraw))
}
