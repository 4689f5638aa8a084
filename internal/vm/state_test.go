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

package vm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/delftproto/protovm/internal/value"
)

// TestGcThreadResetsUntouchedCell exercises the reset branch of
// runCallback's per-round collection directly: a cell owned by the thread
// but never touched this round (is_executed left false) has its data
// cleared to undefined, so the next INIT_FEEDBACK reinitializes it.
func TestGcThreadResetsUntouchedCell(t *testing.T) {
	st := newStateTable(2)
	st.cells[0] = stateCell{data: value.Num(42), isExecuted: false, owner: 0}

	st.gcThread(0)

	require.True(t, st.cells[0].data.IsUndefined())
}

// TestGcThreadClearsTouchedCell exercises the retain branch: a cell
// touched this round keeps its data but has is_executed cleared so next
// round starts fresh.
func TestGcThreadClearsTouchedCell(t *testing.T) {
	st := newStateTable(1)
	st.cells[0] = stateCell{data: value.Num(7), isExecuted: true, owner: 0}

	st.gcThread(0)

	require.Equal(t, float32(7), st.cells[0].data.Number())
	require.False(t, st.cells[0].isExecuted)
}

// TestGcThreadIgnoresOtherOwners confirms collection is scoped to the
// thread that just ran: a cell owned by a different thread is untouched
// regardless of its is_executed flag.
func TestGcThreadIgnoresOtherOwners(t *testing.T) {
	st := newStateTable(1)
	st.cells[0] = stateCell{data: value.Num(9), isExecuted: false, owner: 1}

	st.gcThread(0)

	require.Equal(t, float32(9), st.cells[0].data.Number())
}
