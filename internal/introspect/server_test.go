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

package introspect_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/delftproto/protovm/internal/introspect"
	"github.com/delftproto/protovm/internal/vm"
	"github.com/delftproto/protovm/internal/xlog"
)

func TestUnknownNodeReturns404(t *testing.T) {
	s := introspect.New(func(name string) (*vm.Machine, bool) { return nil, false }, xlog.New())

	req := httptest.NewRequest(http.MethodGet, "/nodes/missing", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestKnownNodeReturnsSnapshot(t *testing.T) {
	m := vm.New(vm.Extended, "n0", 1, nil, nil, xlog.New())
	s := introspect.New(func(name string) (*vm.Machine, bool) {
		if name == "n0" {
			return m, true
		}
		return nil, false
	}, xlog.New())

	req := httptest.NewRequest(http.MethodGet, "/nodes/n0", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var snap vm.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Equal(t, "n0", snap.Self)
}
