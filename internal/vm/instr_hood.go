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

// opMID pushes this node's numeric id, a host-assigned float32 distinct
// from the string NodeID used for hood identity.
func opMID(m *Machine) {
	m.exec.Push(value.Num(m.numericID))
}

func opFoldHood(m *Machine) {
	i := int(m.cursor.NextVLQ())
	foldHoodCore(m, i)
}

// opVFoldHood is FOLD_HOOD's MIT-deprecated variant. It reads the same
// channel index followed by one extra index byte that historically named
// a global to receive the fold result; the write is dropped and the byte
// only discarded.
func opVFoldHood(m *Machine) {
	i := int(m.cursor.NextVLQ())
	_ = m.cursor.NextVLQ()
	foldHoodCore(m, i)
}

// foldHoodCore implements FOLD_HOOD i: store export_value into this
// node's imports[i], then fuse start_value with every neighbor's
// imports[i] in insertion order, skipping neighbors without a defined
// import. The export is written before any fusing, so a node is always
// part of its own aggregation. Iterator state (current neighbor index) is
// carried by the closures pushed onto the callback stack rather than
// machine-global scratch fields, so nested hood folds cannot corrupt
// each other (see opTupMap's note).
func foldHoodCore(m *Machine, channel int) {
	exportV := m.exec.Pop()
	startV := m.exec.Pop()
	faddr := m.exec.Pop()

	m.hood.Self().Imports[channel] = exportV
	idx := 0

	var step continuation
	step = func(mm *Machine) {
		result := mm.exec.Pop()
		mm.env.Pop()
		mm.env.Pop()
		next := mm.hood.nextWithImport(idx, channel)
		if next < 0 {
			mm.exec.Push(result)
			return
		}
		idx = next
		mm.env.Push(result)
		mm.env.Push(mm.hood.At(next).Imports[channel])
		mm.call(faddr.AddressOffset(), step)
	}
	m.env.Push(startV)
	m.env.Push(exportV)
	m.call(faddr.AddressOffset(), step)
}

func opFoldHoodPlus(m *Machine) {
	i := int(m.cursor.NextVLQ())
	foldHoodPlusCore(m, i)
}

func opVFoldHoodPlus(m *Machine) {
	i := int(m.cursor.NextVLQ())
	_ = m.cursor.NextVLQ()
	foldHoodPlusCore(m, i)
}

// foldHoodPlusCore implements FOLD_HOOD_PLUS i: every value, including
// this node's own export, is routed through filter_addr before being
// fused. The continuation chain alternates between a filter call and a
// fuse call: filter-first, then filter-step/fuse-step pairs until the
// neighbors run out.
func foldHoodPlusCore(m *Machine, channel int) {
	exportV := m.exec.Pop()
	filterAddr := m.exec.Pop()
	fuseAddr := m.exec.Pop()

	m.hood.Self().Imports[channel] = exportV
	idx := 0

	var running value.Value
	var advanceOrFinish func(mm *Machine)
	var afterFilterFirst continuation
	var afterFilterNext continuation
	var afterFuse continuation

	afterFilterFirst = func(mm *Machine) {
		running = mm.exec.Pop()
		mm.env.Pop()
		advanceOrFinish(mm)
	}
	advanceOrFinish = func(mm *Machine) {
		next := mm.hood.nextWithImport(idx, channel)
		if next < 0 {
			mm.exec.Push(running)
			return
		}
		idx = next
		mm.env.Push(mm.hood.At(next).Imports[channel])
		mm.call(filterAddr.AddressOffset(), afterFilterNext)
	}
	afterFilterNext = func(mm *Machine) {
		filtered := mm.exec.Pop()
		mm.env.Pop()
		mm.env.Push(running)
		mm.env.Push(filtered)
		mm.call(fuseAddr.AddressOffset(), afterFuse)
	}
	afterFuse = func(mm *Machine) {
		running = mm.exec.Pop()
		mm.env.Pop()
		mm.env.Pop()
		advanceOrFinish(mm)
	}

	m.env.Push(exportV)
	m.call(filterAddr.AddressOffset(), afterFilterFirst)
}
