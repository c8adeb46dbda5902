// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package events

import (
	"github.com/curio-house/curio/curio"
	"github.com/curio-house/curio/logdb"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// LogMeta pins a log record to the ledger call that produced it.
type LogMeta struct {
	Seq      uint64        `json:"seq"`
	Time     uint64        `json:"time"`
	TxID     curio.Bytes32 `json:"txID"`
	TxOrigin curio.Address `json:"txOrigin"`
}

type TopicSet struct {
	Topic0 *curio.Bytes32 `json:"topic0"`
	Topic1 *curio.Bytes32 `json:"topic1"`
	Topic2 *curio.Bytes32 `json:"topic2"`
	Topic3 *curio.Bytes32 `json:"topic3"`
	Topic4 *curio.Bytes32 `json:"topic4"`
}

// FilteredEvent only comes from one module account
type FilteredEvent struct {
	Address curio.Address    `json:"address"`
	Topics  []*curio.Bytes32 `json:"topics"`
	Data    string           `json:"data"`
	Meta    LogMeta          `json:"meta"`
}

// convert a logdb.Event into a json format Event
func convertEvent(event *logdb.Event) *FilteredEvent {
	fe := FilteredEvent{
		Address: event.Address,
		Data:    hexutil.Encode(event.Data),
		Meta: LogMeta{
			Seq:      event.Seq,
			Time:     event.Time,
			TxID:     event.TxID,
			TxOrigin: event.TxOrigin,
		},
	}
	fe.Topics = make([]*curio.Bytes32, 0)
	for i := 0; i < 5; i++ {
		if event.Topics[i] != nil {
			fe.Topics = append(fe.Topics, event.Topics[i])
		}
	}
	return &fe
}

type EventCriteria struct {
	Address *curio.Address `json:"address"`
	TopicSet
}

type EventFilter struct {
	CriteriaSet []*EventCriteria `json:"criteriaSet"`
	Range       *logdb.Range     `json:"range"`
	Options     *logdb.Options   `json:"options"`
	Order       logdb.Order      `json:"order"`
}

func convertEventFilter(filter *EventFilter) *logdb.EventFilter {
	f := &logdb.EventFilter{
		Range:   filter.Range,
		Options: filter.Options,
		Order:   filter.Order,
	}
	if len(filter.CriteriaSet) > 0 {
		criterias := make([]*logdb.EventCriteria, len(filter.CriteriaSet))
		for i, criteria := range filter.CriteriaSet {
			var topics [5]*curio.Bytes32
			topics[0] = criteria.Topic0
			topics[1] = criteria.Topic1
			topics[2] = criteria.Topic2
			topics[3] = criteria.Topic3
			topics[4] = criteria.Topic4
			criteria := &logdb.EventCriteria{
				Address: criteria.Address,
				Topics:  topics,
			}
			criterias[i] = criteria
		}
		f.CriteriaSet = criterias
	}
	return f
}
