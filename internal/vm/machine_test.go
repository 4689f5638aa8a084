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

package vm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/delftproto/protovm/internal/asm"
	"github.com/delftproto/protovm/internal/value"
	"github.com/delftproto/protovm/internal/vm"
	"github.com/delftproto/protovm/internal/xlog"
)

func newMachine(t *testing.T, self vm.NodeID) *vm.Machine {
	t.Helper()
	return vm.New(vm.Extended, self, 1, nil, nil, xlog.New())
}

func runToCompletion(t *testing.T, m *vm.Machine) {
	t.Helper()
	for i := 0; !m.Finished(); i++ {
		require.Less(t, i, 100000, "script did not terminate")
		require.NoError(t, m.Step())
	}
}

func install(t *testing.T, m *vm.Machine, code []byte) {
	t.Helper()
	m.Install(code)
	runToCompletion(t, m)
}

func run(t *testing.T, m *vm.Machine, now float64) {
	t.Helper()
	m.Run(now)
	runToCompletion(t, m)
}

// header emits a DEF_VM_EX prologue followed by ACTIVATE 0, which is how
// every scenario below brings thread 0 into round-robin contention (the
// extended installation dialect, unlike DEF_VM, does not auto-activate a
// thread).
func header(stackSize, envSize, globalsSize, threadsSize, stateSize, exportsSize, maxDepth uint32) *asm.Builder {
	b := asm.New().
		U8(byte(vm.OpDefVMEx)).
		VLQ(stackSize).VLQ(envSize).VLQ(globalsSize).VLQ(threadsSize).VLQ(stateSize).VLQ(exportsSize).VLQ(maxDepth).
		U8(byte(vm.OpActivate)).VLQ(0)
	return b
}

func defFun(b *asm.Builder, body []byte) *asm.Builder {
	return b.U8(byte(vm.OpDefFun)).VLQ(uint32(len(body))).Bytes(body)
}

// A function computing LIT_2 + LIT_3 then RET; after one round the
// thread result is 5.
func TestArithmeticScenario(t *testing.T) {
	main := asm.New().U8(byte(vm.OpLitN2)).U8(byte(vm.OpLitN3)).U8(byte(vm.OpAdd)).U8(byte(vm.OpRet)).Build()

	code := defFun(header(8, 4, 1, 1, 0, 1, 8), main).U8(byte(vm.OpExit)).Build()

	m := newMachine(t, "n0")
	install(t, m, code)
	run(t, m, 0)

	require.True(t, m.Finished())
	require.Equal(t, float32(5), m.Result(0).Number())
}

// TUP_MAP doubling every element of [1,2,3].
func TestTupMapDoublingScenario(t *testing.T) {
	double := asm.New().U8(byte(vm.OpRefN0)).U8(byte(vm.OpRefN0)).U8(byte(vm.OpAdd)).U8(byte(vm.OpRet)).Build()
	main := asm.New().
		U8(byte(vm.OpGloRefN0)).
		U8(byte(vm.OpLitN1)).U8(byte(vm.OpLitN2)).U8(byte(vm.OpLitN3)).
		U8(byte(vm.OpFabTup)).VLQ(3).
		U8(byte(vm.OpTupMap)).
		U8(byte(vm.OpRet)).
		Build()

	b := header(16, 6, 2, 1, 0, 1, 8)
	b = defFun(b, double)
	b = defFun(b, main)
	code := b.U8(byte(vm.OpExit)).Build()

	m := newMachine(t, "n0")
	install(t, m, code)
	run(t, m, 0)

	result := m.Result(0)
	require.True(t, result.IsTuple())
	require.Equal(t, 3, result.Len())
	require.Equal(t, float32(2), result.Elem(0).Number())
	require.Equal(t, float32(4), result.Elem(1).Number())
	require.Equal(t, float32(6), result.Elem(2).Number())
}

// FOLD(add, 0, [10,20,30]) reduces to 60.
func TestFoldSumScenario(t *testing.T) {
	add := asm.New().U8(byte(vm.OpRefN1)).U8(byte(vm.OpRefN0)).U8(byte(vm.OpAdd)).U8(byte(vm.OpRet)).Build()
	main := asm.New().
		U8(byte(vm.OpGloRefN0)).
		U8(byte(vm.OpLit8)).U8(0).
		U8(byte(vm.OpLit8)).U8(10).
		U8(byte(vm.OpLit8)).U8(20).
		U8(byte(vm.OpLit8)).U8(30).
		U8(byte(vm.OpFabTup)).VLQ(3).
		U8(byte(vm.OpFold)).
		U8(byte(vm.OpRet)).
		Build()

	b := header(16, 6, 2, 1, 0, 1, 8)
	b = defFun(b, add)
	b = defFun(b, main)
	code := b.U8(byte(vm.OpExit)).Build()

	m := newMachine(t, "n0")
	install(t, m, code)
	run(t, m, 0)

	require.Equal(t, float32(60), m.Result(0).Number())
}

// A feedback counter: INIT_FEEDBACK 0 (lambda returning 0); LIT_1; ADD;
// SET_FEEDBACK 0. Across five rounds the result is 1..5 and the state
// cell retains its value between rounds.
func TestFeedbackCounterScenario(t *testing.T) {
	zero := asm.New().U8(byte(vm.OpLitN0)).U8(byte(vm.OpRet)).Build()
	main := asm.New().
		U8(byte(vm.OpGloRefN0)).
		U8(byte(vm.OpInitFeedback)).VLQ(0).
		U8(byte(vm.OpLitN1)).
		U8(byte(vm.OpAdd)).
		U8(byte(vm.OpSetFeedback)).VLQ(0).
		U8(byte(vm.OpRet)).
		Build()

	b := header(8, 4, 2, 1, 1, 1, 8)
	b = defFun(b, zero)
	b = defFun(b, main)
	code := b.U8(byte(vm.OpExit)).Build()

	m := newMachine(t, "n0")
	install(t, m, code)

	for round := 1; round <= 5; round++ {
		run(t, m, float64(round))
		require.Equal(t, float32(round), m.Result(0).Number(), "round %d", round)
	}
}

// FOLD_HOOD over a hood with only self, then with a second neighbor
// whose import is 5. Iteration order must fuse self (7) before the added
// neighbor (5).
func TestFoldHoodScenario(t *testing.T) {
	fuse := asm.New().U8(byte(vm.OpRefN1)).U8(byte(vm.OpRefN0)).U8(byte(vm.OpAdd)).U8(byte(vm.OpRet)).Build()
	main := asm.New().
		U8(byte(vm.OpGloRefN0)). // fuse addr
		U8(byte(vm.OpLitN0)).    // start = 0
		U8(byte(vm.OpLit8)).U8(7). // export = 7
		U8(byte(vm.OpFoldHood)).VLQ(0).
		U8(byte(vm.OpRet)).
		Build()

	b := header(16, 6, 2, 1, 0, 1, 8)
	b = defFun(b, fuse)
	b = defFun(b, main)
	code := b.U8(byte(vm.OpExit)).Build()

	m := newMachine(t, "n0")
	install(t, m, code)

	run(t, m, 0)
	require.Equal(t, float32(7), m.Result(0).Number())

	neighbor := m.Hood().Upsert("n1")
	neighbor.Imports[0] = value.Num(5)

	run(t, m, 1)
	require.Equal(t, float32(12), m.Result(0).Number())
}

// FOLD_HOOD_PLUS routes every value, including this node's own export,
// through the filter before fusing. With filter doubling and fuse adding:
// self only gives filter(7) = 14; adding a neighbor importing 5 gives
// 14 + filter(5) = 24.
func TestFoldHoodPlusScenario(t *testing.T) {
	fuse := asm.New().U8(byte(vm.OpRefN1)).U8(byte(vm.OpRefN0)).U8(byte(vm.OpAdd)).U8(byte(vm.OpRet)).Build()
	double := asm.New().U8(byte(vm.OpRefN0)).U8(byte(vm.OpRefN0)).U8(byte(vm.OpAdd)).U8(byte(vm.OpRet)).Build()
	main := asm.New().
		U8(byte(vm.OpGloRefN0)).   // fuse addr
		U8(byte(vm.OpGloRefN1)).   // filter addr
		U8(byte(vm.OpLit8)).U8(7). // export = 7
		U8(byte(vm.OpFoldHoodPlus)).VLQ(0).
		U8(byte(vm.OpRet)).
		Build()

	b := header(16, 6, 3, 1, 0, 1, 8)
	b = defFun(b, fuse)
	b = defFun(b, double)
	b = defFun(b, main)
	code := b.U8(byte(vm.OpExit)).Build()

	m := newMachine(t, "n0")
	install(t, m, code)

	run(t, m, 0)
	require.Equal(t, float32(14), m.Result(0).Number())

	neighbor := m.Hood().Upsert("n1")
	neighbor.Imports[0] = value.Num(5)

	run(t, m, 1)
	require.Equal(t, float32(24), m.Result(0).Number())
}

// CTRL_C_TRIGGER marks a thread for host interrupts: once the thread
// deactivates itself it stops being scheduled, until Interrupt converts
// the host signal into a trigger and it runs one more round. The body
// returns DT so each run is distinguishable.
func TestInterruptTriggersMarkedThread(t *testing.T) {
	main := asm.New().
		U8(byte(vm.OpCtrlCTrigger)).VLQ(0).
		U8(byte(vm.OpDeactivate)).VLQ(0).
		U8(byte(vm.OpDT)).
		U8(byte(vm.OpRet)).
		Build()

	code := defFun(header(8, 4, 1, 1, 0, 1, 8), main).U8(byte(vm.OpExit)).Build()

	m := newMachine(t, "n0")
	install(t, m, code)

	run(t, m, 1)
	require.Equal(t, float32(1), m.Result(0).Number(), "first run returns desired_period")

	run(t, m, 2)
	require.Equal(t, float32(1), m.Result(0).Number(), "deactivated thread must not run")

	m.Interrupt()
	run(t, m, 5)
	require.Equal(t, float32(4), m.Result(0).Number(), "interrupt-triggered run returns elapsed time")
}
