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

// thread is the per-thread scheduling record: {triggered, active, result,
// last_time, desired_period}.
type thread struct {
	triggered     bool
	active        bool
	result        value.Value
	lastTime      float64
	hasRun        bool
	desiredPeriod float64

	// interruptTriggered marks this thread to be triggered when the host
	// delivers an interrupt signal via Machine.Interrupt (set by
	// CTRL_C_TRIGGER, cleared by CTRL_C_NO_TRIGGER).
	interruptTriggered bool
}

func newThread() *thread {
	return &thread{desiredPeriod: 1}
}

// pending reports triggered || active.
func (t *thread) pending() bool { return t.triggered || t.active }

// threadTable holds every thread sized once by DEF_VM/DEF_VM_EX. DEF_VM
// creates exactly one thread and activates it.
type threadTable struct {
	threads []*thread
	current int
}

func newThreadTable(n int) *threadTable {
	ts := make([]*thread, n)
	for i := range ts {
		ts[i] = newThread()
	}
	return &threadTable{threads: ts}
}

func (t *threadTable) get(id int) *thread {
	if id < 0 || id >= len(t.threads) {
		panic(newFault(ProgrammerBug, 0, "thread", "index out of range"))
	}
	return t.threads[id]
}

func (t *threadTable) len() int { return len(t.threads) }

// nextPending finds the next pending thread in round-robin order starting
// from current. It returns -1 if none are pending.
func (t *threadTable) nextPending() int {
	n := len(t.threads)
	for i := 0; i < n; i++ {
		idx := (t.current + i) % n
		if t.threads[idx].pending() {
			return idx
		}
	}
	return -1
}

// advance moves current past the given thread index, wrapping around.
func (t *threadTable) advance(ran int) {
	if len(t.threads) == 0 {
		return
	}
	t.current = (ran + 1) % len(t.threads)
}
