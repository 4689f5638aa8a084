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

import "github.com/delftproto/protovm/internal/value"

// NodeID is a stable, host-assigned node identity with equality. The
// host loop mints these, e.g. from a UUID.
type NodeID string

// Neighbor is a per-node record of imported values, one slot per export
// channel. Imports start undefined.
type Neighbor struct {
	ID      NodeID
	Imports []value.Value
}

// Neighborhood is the ordered set of Neighbor records: insertion order,
// self always first, stable within one fold.
type Neighborhood struct {
	order       []NodeID
	byID        map[NodeID]*Neighbor
	exportsSize int
}

func newNeighborhood(exportsSize int) *Neighborhood {
	return &Neighborhood{byID: make(map[NodeID]*Neighbor), exportsSize: exportsSize}
}

// installSelf inserts this node's own record at position 0, as required
// by the DEF_VM/DEF_VM_EX installation protocol.
func (h *Neighborhood) installSelf(self NodeID) {
	h.order = nil
	h.byID = make(map[NodeID]*Neighbor)
	h.upsert(self)
}

// Upsert inserts a neighbor (at the end of insertion order) if absent, or
// returns the existing record. It never reorders an existing neighbor.
// This is the host-facing entry point for exchanging imports between
// rounds; it must not be called mid-step.
func (h *Neighborhood) Upsert(id NodeID) *Neighbor {
	return h.upsert(id)
}

func (h *Neighborhood) upsert(id NodeID) *Neighbor {
	if n, ok := h.byID[id]; ok {
		return n
	}
	n := &Neighbor{ID: id, Imports: make([]value.Value, h.exportsSize)}
	h.byID[id] = n
	h.order = append(h.order, id)
	return n
}

// Remove drops a neighbor (never self, by host convention; the engine
// does not special-case index 0 here, it is up to the host to not call
// Remove on its own id).
func (h *Neighborhood) Remove(id NodeID) {
	if _, ok := h.byID[id]; !ok {
		return
	}
	delete(h.byID, id)
	for i, o := range h.order {
		if o == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Self returns this node's own record (always slot 0).
func (h *Neighborhood) Self() *Neighbor {
	if len(h.order) == 0 {
		return nil
	}
	return h.byID[h.order[0]]
}

// At returns the i-th neighbor in insertion order, or nil past the end.
func (h *Neighborhood) At(i int) *Neighbor {
	if i < 0 || i >= len(h.order) {
		return nil
	}
	return h.byID[h.order[i]]
}

// Len is the number of neighbors, including self.
func (h *Neighborhood) Len() int { return len(h.order) }

// nextWithImport scans forward from (exclusive of) index `from`, in
// insertion order, for the next neighbor whose imports[channel] is
// defined; neighbors without a defined import are skipped by the hood
// folds. Returns -1 if none.
func (h *Neighborhood) nextWithImport(from, channel int) int {
	for i := from + 1; i < len(h.order); i++ {
		if !h.byID[h.order[i]].Imports[channel].IsUndefined() {
			return i
		}
	}
	return -1
}
