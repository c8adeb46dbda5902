// Copyright (c) 2026 The Curio developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"strings"

	"github.com/curio-house/curio/api/assets"
	"github.com/curio-house/curio/api/auctions"
	"github.com/curio-house/curio/api/escrow"
	"github.com/curio-house/curio/api/events"
	"github.com/curio-house/curio/api/transfers"
	"github.com/curio-house/curio/ledger"
	"github.com/curio-house/curio/logdb"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New return api router
func New(l *ledger.Ledger, logDB *logdb.LogDB, allowedOrigins string) http.HandlerFunc {
	origins := strings.Split(strings.TrimSpace(allowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()

	assets.New(l).
		Mount(router, "/assets")
	auctions.New(l).
		Mount(router, "/auctions")
	escrow.New(l).
		Mount(router, "/escrow")
	events.New(logDB).
		Mount(router, "/logs/event")
	transfers.New(logDB).
		Mount(router, "/logs/transfer")

	router.Path("/metrics").Handler(promhttp.Handler())

	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type"}))(router).ServeHTTP
}
