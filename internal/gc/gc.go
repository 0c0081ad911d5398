/*
Copyright (C) 2023  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package gc is the mark-sweep collector over the cons arena
// (spec.md §4.5). The teacher never implements one of its own — memcp
// leans entirely on Go's collector over plain []Scmer slices — so this
// package is grounded on original_source/src/gc.cpp instead, ported
// into the teacher's reporting idiom (a plain fmt.Println table, the
// way scm/declare.go reports primitive help text).
package gc

import (
	"fmt"
	"io"

	"github.com/docker/go-units"

	"github.com/launix-de/scmcore/internal/value"
)

// StepThreshold is the arena growth, in cells, that triggers an
// automatic collection — original_source/src/gc.cpp calls this the
// GC step and defaults it in the same ballpark.
const StepThreshold = 10000

// Collector drives Arena.Collect from a set of environment roots and
// decides when an automatic cycle is due.
type Collector struct {
	arena        *value.Arena
	lastCollectN int
	cycles       int
}

// New wraps arena for collection.
func New(arena *value.Arena) *Collector {
	return &Collector{arena: arena}
}

// MaybeCollect runs a cycle if the arena has grown by StepThreshold
// cells since the last one, rooted at roots. It returns true if a
// collection actually ran.
func (c *Collector) MaybeCollect(roots []*value.Env) bool {
	if c.arena.Len()-c.lastCollectN < StepThreshold {
		return false
	}
	c.Collect(roots)
	return true
}

// Collect forces one mark-sweep cycle rooted at roots: every Env in
// roots, and everything reachable through their bindings and outer
// chains, survives; everything else is freed.
func (c *Collector) Collect(roots []*value.Env) int {
	freed := c.arena.Collect(func(mark func(value.PairRef)) {
		visitedEnv := make(map[*value.Env]bool)
		visitedVec := make(map[*value.VectorObj]bool)
		for _, r := range roots {
			markEnv(r, mark, visitedEnv, visitedVec)
		}
	})
	c.lastCollectN = c.arena.Len()
	c.cycles++
	return freed
}

func markEnv(e *value.Env, mark func(value.PairRef), seenEnv map[*value.Env]bool, seenVec map[*value.VectorObj]bool) {
	for ; e != nil; e = e.Outer {
		if seenEnv[e] {
			return
		}
		seenEnv[e] = true
		e.Each(func(v value.Value) {
			markValue(v, mark, seenEnv, seenVec)
		})
	}
}

// markValue marks every pair reachable from v. Pair chains are walked
// iteratively (not recursively) so a long but non-circular list does
// not grow the Go call stack, per original_source/src/gc.cpp's
// iterative cdr-walk; only the less common car side recurses.
func markValue(v value.Value, mark func(value.PairRef), seenEnv map[*value.Env]bool, seenVec map[*value.VectorObj]bool) {
	for v.IsPair() {
		p := v.Pair()
		mark(p)
		markValue(p.Car(), mark, seenEnv, seenVec)
		v = p.Cdr()
	}
	switch {
	case v.IsVector():
		vec := v.Vec()
		if seenVec[vec] {
			return
		}
		seenVec[vec] = true
		for _, item := range vec.Items {
			markValue(item, mark, seenEnv, seenVec)
		}
	case v.IsProcedure():
		proc := v.Proc()
		markValue(proc.Body, mark, seenEnv, seenVec)
		markEnv(proc.Env, mark, seenEnv, seenVec)
	case v.IsEnv():
		markEnv(v.Env(), mark, seenEnv, seenVec)
	}
}

// Dump writes a human-readable size summary followed by one line per
// arena slot, live or free (each line says which). It is called
// directly by the host or a test; no Scheme primitive exposes it.
func (c *Collector) Dump(w io.Writer) {
	n := c.arena.Len()
	bytesEstimate := int64(n) * arenaCellSize
	fmt.Fprintf(w, "arena: %d cells (%s), %d collections run\n", n, units.BytesSize(float64(bytesEstimate)), c.cycles)
	for i := 0; i < n; i++ {
		mark, free, car, cdr := c.arena.DumpCell(i)
		status := "live"
		if free {
			status = "free"
		}
		fmt.Fprintf(w, "  [%d] %s mark=%v car=%v cdr=%v\n", i, status, mark, car, cdr)
	}
}

// arenaCellSize approximates the footprint of one cons cell for the
// dump's human-readable size column; Go's real per-Value size depends
// on the payload stored in its interface box, so this is a rough
// accounting figure rather than a precise sizeof.
const arenaCellSize = 48
