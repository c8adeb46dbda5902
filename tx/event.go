// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"github.com/curio-house/curio/curio"
)

// Event represents a structured log entry emitted by a module.
// Topics carry the indexed fields, topic0 names the event.
type Event struct {
	Address curio.Address
	Topics  []curio.Bytes32
	Data    []byte
}

// Events slice of event logs.
type Events []*Event
