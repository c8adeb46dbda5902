// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transfers

import (
	"github.com/curio-house/curio/api/events"
	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/logdb"
	"github.com/ethereum/go-ethereum/common/math"
)

type FilteredTransfer struct {
	Sender    curio.Address         `json:"sender"`
	Recipient curio.Address         `json:"recipient"`
	Amount    *math.HexOrDecimal256 `json:"amount"`
	Meta      events.LogMeta        `json:"meta"`
	Token     uint32                `json:"token"`
}

func convertTransfer(transfer *logdb.Transfer) *FilteredTransfer {
	v := math.HexOrDecimal256(*transfer.Amount)
	return &FilteredTransfer{
		Sender:    transfer.Sender,
		Recipient: transfer.Recipient,
		Amount:    &v,
		Token:     transfer.Token,
		Meta: events.LogMeta{
			Seq:      transfer.Seq,
			Time:     transfer.Time,
			TxID:     transfer.TxID,
			TxOrigin: transfer.TxOrigin,
		},
	}
}

type TransferCriteria struct {
	TxOrigin  *curio.Address `json:"txOrigin"`
	Sender    *curio.Address `json:"sender"`
	Recipient *curio.Address `json:"recipient"`
}

type TransferFilter struct {
	TxID        *curio.Bytes32      `json:"txID"`
	CriteriaSet []*TransferCriteria `json:"criteriaSet"`
	Range       *logdb.Range        `json:"range"`
	Options     *logdb.Options      `json:"options"`
	Order       logdb.Order         `json:"order"`
}

func convertTransferFilter(filter *TransferFilter) *logdb.TransferFilter {
	f := &logdb.TransferFilter{
		TxID:    filter.TxID,
		Range:   filter.Range,
		Options: filter.Options,
		Order:   filter.Order,
	}
	if len(filter.CriteriaSet) > 0 {
		criterias := make([]*logdb.TransferCriteria, len(filter.CriteriaSet))
		for i, criteria := range filter.CriteriaSet {
			criterias[i] = &logdb.TransferCriteria{
				TxOrigin:  criteria.TxOrigin,
				Sender:    criteria.Sender,
				Recipient: criteria.Recipient,
			}
		}
		f.CriteriaSet = criterias
	}
	return f
}
