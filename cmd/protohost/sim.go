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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/delftproto/protovm/internal/introspect"
	"github.com/delftproto/protovm/internal/mathlib"
	"github.com/delftproto/protovm/internal/vm"
	"github.com/delftproto/protovm/internal/xlog"
)

// node bundles one simulated Machine with the identity and display tag
// the host loop assigns it.
type node struct {
	id      vm.NodeID
	tag     string
	machine *vm.Machine
}

// simulation drives N independent Machines through a scenario: install,
// then round after round of run-to-completion plus a full-mesh import
// exchange. Each Machine is only ever touched by its own goroutine within
// a round; the errgroup barrier is the only cross-goroutine
// synchronization point, so imports are never mutated during a step.
type simulation struct {
	cfg   Scenario
	log   xlog.Logger
	nodes []*node
}

func newSimulation(cfg Scenario, code []byte, log xlog.Logger) *simulation {
	s := &simulation{cfg: cfg, log: log}
	for i := 0; i < cfg.NodeCount; i++ {
		id := vm.NodeID(uuid.New().String())
		math := mathlib.NewDefault(cfg.Seed + int64(i))
		m := vm.New(vm.Extended, id, float32(i), math, nil, log.New("node", i))
		m.Install(code)
		drainInstall(m)
		s.nodes = append(s.nodes, &node{id: id, tag: displayTag(id), machine: m})
	}
	return s
}

// displayTag derives a short, deterministic, human-legible label from a
// node's UUID via SHA3, so trace output doesn't have to print full UUIDs.
func displayTag(id vm.NodeID) string {
	sum := sha3.Sum256([]byte(id))
	return fmt.Sprintf("%x", sum[:3])
}

func drainInstall(m *vm.Machine) {
	for !m.Finished() {
		if err := m.Step(); err != nil {
			xlog.Error("install faulted", "err", err)
			return
		}
	}
}

func drainRound(m *vm.Machine) error {
	for !m.Finished() {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// lookup implements introspect.NodeSource by display tag.
func (s *simulation) lookup(tag string) (*vm.Machine, bool) {
	for _, n := range s.nodes {
		if n.tag == tag {
			return n.machine, true
		}
	}
	return nil, false
}

// run advances the simulation for cfg.Rounds rounds, pacing the round
// clock with a rate.Limiter and exchanging imports between rounds across
// a full-mesh "radio range" stand-in.
func (s *simulation) run(ctx context.Context) error {
	limiter := rate.NewLimiter(rate.Every(time.Duration(s.cfg.RoundPeriod*float64(time.Second))), 1)
	now := 0.0

	// First interrupt converts to thread triggers on every node (the
	// CTRL_C_TRIGGER extension); the second aborts the process.
	sigc := make(chan os.Signal, 2)
	signal.Notify(sigc, os.Interrupt)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		s.log.Warn("interrupt: triggering marked threads, interrupt again to abort")
		for _, n := range s.nodes {
			n.machine.Interrupt()
		}
		<-sigc
		os.Exit(1)
	}()

	for round := 0; round < s.cfg.Rounds; round++ {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		now += s.cfg.RoundPeriod

		g, _ := errgroup.WithContext(ctx)
		for _, n := range s.nodes {
			n := n
			g.Go(func() error {
				n.machine.Run(now)
				return drainRound(n.machine)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		s.exchangeImports()
		s.trace(round)
	}
	return nil
}

// exchangeImports copies every node's self export into every other node's
// neighbor record, a full-mesh stand-in for a real radio transport.
func (s *simulation) exchangeImports() {
	exports := make([]*vm.Neighbor, len(s.nodes))
	for i, n := range s.nodes {
		exports[i] = n.machine.Self()
	}
	for i, n := range s.nodes {
		for j, other := range s.nodes {
			if i == j {
				continue
			}
			peer := n.machine.Hood().Upsert(other.id)
			copy(peer.Imports, exports[j].Imports)
		}
	}
}

func (s *simulation) serveIntrospect(addr string) {
	if addr == "" {
		return
	}
	srv := introspect.New(s.lookup, s.log)
	go func() {
		if err := srv.ListenAndServe(addr); err != nil {
			s.log.Error("introspect server stopped", "err", err)
		}
	}()
}

// trace renders one round's per-node thread-0 result as a table.
func (s *simulation) trace(round int) {
	renderRoundTable(os.Stdout, round, s.nodes)
}
