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

func opActivate(m *Machine) {
	t := int(m.cursor.NextVLQ())
	m.threads.get(t).active = true
}

func opDeactivate(m *Machine) {
	t := int(m.cursor.NextVLQ())
	m.threads.get(t).active = false
}

func opTrigger(m *Machine) {
	t := int(m.cursor.NextVLQ())
	m.threads.get(t).triggered = true
}

func opResult(m *Machine) {
	t := int(m.cursor.NextVLQ())
	m.exec.Push(m.threads.get(t).result)
}

// opDT pushes the elapsed time since the running thread's last result, or
// its desired_period if it has never run.
func opDT(m *Machine) {
	t := m.threads.get(m.threads.current)
	if !t.hasRun {
		m.exec.Push(value.Num(float32(t.desiredPeriod)))
		return
	}
	m.exec.Push(value.Num(float32(m.startTime - t.lastTime)))
}

// opSetDT peeks the top-of-stack number and assigns it as the running
// thread's desired_period. The scheduler currently ignores it; DT reports
// it for a thread that has never run.
func opSetDT(m *Machine) {
	v := m.exec.Top()
	m.threads.get(m.threads.current).desiredPeriod = float64(v.Number())
}

// opCtrlCTrigger marks a thread to be triggered by a host-delivered
// interrupt signal. The host calls Machine.Interrupt from its signal
// path; the VM itself never installs a handler.
func opCtrlCTrigger(m *Machine) {
	t := int(m.cursor.NextVLQ())
	m.threads.get(t).interruptTriggered = true
}

func opCtrlCNoTrigger(m *Machine) {
	t := int(m.cursor.NextVLQ())
	m.threads.get(t).interruptTriggered = false
}
