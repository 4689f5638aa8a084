// Copyright 2026 The DelftProto Authors
// This file is part of the DelftProto VM.
//
// The DelftProto VM is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The DelftProto VM is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the DelftProto VM. If not, see <http://www.gnu.org/licenses/>.

// Package introspect serves a read-only JSON snapshot of one simulated
// node's machine state over HTTP, for a developer to watch a running host
// loop from a browser or curl. It is strictly an observability surface; it
// is not the neighbor-export transport, which stays out of scope.
package introspect

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"github.com/delftproto/protovm/internal/vm"
	"github.com/delftproto/protovm/internal/xlog"
)

// NodeSource resolves a node name to its Machine, as registered by the host
// loop. It is called once per request, so the host loop stays free to swap
// or add nodes between rounds.
type NodeSource func(name string) (*vm.Machine, bool)

// Server wraps an httprouter.Router exposing the snapshot endpoints.
type Server struct {
	router *httprouter.Router
	log    xlog.Logger
}

// New builds a Server over the given node lookup. Routes:
//
//	GET /nodes/:name       -> vm.Snapshot JSON for that node
func New(nodes NodeSource, log xlog.Logger) *Server {
	s := &Server{router: httprouter.New(), log: log}

	s.router.GET("/nodes/:name", func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		m, ok := nodes(p.ByName("name"))
		if !ok {
			http.Error(w, "unknown node", http.StatusNotFound)
			return
		}
		writeJSON(w, m.Snapshot())
	})

	return s
}

// Handler returns the CORS-wrapped http.Handler, ready to pass to
// http.ListenAndServe, so the introspection UI can be served from a
// different origin during development.
func (s *Server) Handler() http.Handler {
	return cors.AllowAll().Handler(s.router)
}

// ListenAndServe blocks serving the introspection endpoint until addr
// fails to bind or the process exits.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("introspection endpoint listening", "addr", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
